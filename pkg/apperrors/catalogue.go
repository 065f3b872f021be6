package apperrors

// Domain errors shared across the service layer.
var (
	ErrInvalidEmail     = InvalidInput("email is not a valid email address")
	ErrEmailTaken       = InvalidInput("email address is already being used by another user")
	ErrEmailUnknown     = InvalidInput("email does not belong to a user")
	ErrPasswordTooShort = InvalidInput("password must be at least 6 characters")
	ErrWrongPassword    = InvalidInput("password is not correct")
	ErrInvalidName      = InvalidInput("name must be between 1 and 50 characters")
	ErrInvalidHandle    = InvalidInput("handle must be 3-20 characters with no '@' or spaces")
	ErrHandleTaken      = InvalidInput("handle is already used by another user")

	ErrInvalidToken = AccessDenied("invalid token")
	ErrUserUnknown  = InvalidInput("user id does not exist")
	ErrUserRemoved  = InvalidInput("user has been removed")

	ErrChannelUnknown  = InvalidInput("channel id is not valid")
	ErrInvalidChanName = InvalidInput("channel name must be between 1 and 20 characters")
	ErrNotMember       = AccessDenied("user is not a member of the channel")
	ErrAlreadyMember   = InvalidInput("user is already a member of the channel")
	ErrAlreadyOwner    = InvalidInput("user is already an owner of the channel")
	ErrNotOwner        = InvalidInput("user is not an owner of the channel")
	ErrSoleOwner       = InvalidInput("user is the only owner of the channel")
	ErrPrivateChannel  = AccessDenied("user does not have access to a private channel")
	ErrNotChanOwner    = AccessDenied("user is not an owner of the channel or a global owner")
	ErrNotDMCreator    = AccessDenied("only the creator of the DM can remove it")

	ErrMessageUnknown = InvalidInput("message id is not valid")
	ErrMessageTooLong = InvalidInput("message is more than 1000 characters")
	ErrStartTooLarge  = InvalidInput("start is greater than the total number of messages")
	ErrNegativeStart  = InvalidInput("start must not be negative")
	ErrQueryTooLong   = InvalidInput("query string is above 1000 characters")
	ErrNotAuthor      = AccessDenied("user is not the author of the message")

	ErrNotGlobalOwner    = AccessDenied("the authorised user is not a global owner")
	ErrSoleGlobalOwner   = InvalidInput("the user is currently the only global owner")
	ErrInvalidPermission = InvalidInput("permission id does not refer to a valid permission")
)
