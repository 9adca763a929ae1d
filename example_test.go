package ssechunk_test

import (
	"context"
	"os"

	"github.com/aretw0/ssechunk"
)

func ExampleStream() {
	_ = ssechunk.Stream(context.Background(), os.Stdout, "置換積分", 3)
	// Output:
	// data: {"type":"content","text":"置換積"}
	//
	// data: {"type":"content","text":"分"}
	//
	// data: {"type":"done","full_text":"置換積分"}
}
