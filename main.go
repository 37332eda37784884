package main

import (
	"fmt"
	"os"

	rawkey "rawkey/src"
	"rawkey/src/util"
)

func main() {
	code, err := rawkey.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rawkey: "+err.Error())
	}
	util.Exit(code)
}
