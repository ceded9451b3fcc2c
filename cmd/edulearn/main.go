// Command edulearn is the EduLearn command line client.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/edulearn/cli"
)

func main() {
	err := cli.Run(os.Args[1:])
	if err == nil {
		return
	}
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		fmt.Fprintln(os.Stdout, err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
