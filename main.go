package main

import "github.com/PeterH1998/webapp-privacy-scanner/cmd/piiscan"

func main() {
	piiscan.Execute()
}
