package arith_test

import (
	"errors"
	"fmt"

	"github.com/ferhil/arith"
)

func ExampleEval() {
	v, _ := arith.Eval("2(3+4)")
	fmt.Println(v)
	v, _ = arith.Eval("2^3^2")
	fmt.Println(v)
	// Output:
	// 14
	// 512
}

func ExampleEval_error() {
	_, err := arith.Eval("(1+2")
	fmt.Println(err)
	var ie arith.InputError
	if errors.As(err, &ie) {
		fmt.Println(ie.Pos())
	}
	// Output:
	// missing ) at offset 4
	// 4
}
