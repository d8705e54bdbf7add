package log_test

import (
	"fmt"

	blog "github.com/LerianStudio/lib-bitar/bitar/log"
)

func ExampleParseLevel() {
	level, err := blog.ParseLevel("warning")

	fmt.Println(err == nil)
	fmt.Println(level.String())

	// Output:
	// true
	// warn
}
