// Where: cli/cmd/navbox/main.go
// What: Binary entrypoint.
// Why: Keep main tiny; all logic lives in internal/app.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
