package main

func main() {
	server := NewServer()
	defer server.Hub.Stop()
	server.Run()
}
