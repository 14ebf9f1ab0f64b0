package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ferhil/arith"
)

func main() {
	log.SetFlags(0)
	var inname, verb string
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Parse()

	verb += "\n"
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			v, err := arith.Eval(arg)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf(verb, v)
		}
		return
	}

	in, tty, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	if err := repl(in, verb, tty); err != nil {
		log.Fatal(err)
	}
}

// infile opens the input source. tty reports whether it is an interactive
// terminal, which decides whether repl prompts.
func infile(inname string) (in io.Reader, tty bool, err error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	}
	return os.Stdin, term.IsTerminal(int(os.Stdin.Fd())), nil
}

// repl reads one expression per line and prints its value or the error. A
// line that is just q or Q ends the loop; a failing expression does not.
func repl(in io.Reader, verb string, tty bool) error {
	if tty {
		fmt.Println("arith calculator")
		fmt.Println("type an expression per line, or q to quit")
	}
	sc := bufio.NewScanner(in)
	for {
		if tty {
			fmt.Print("> ")
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if strings.EqualFold(line, "q") {
			break
		}
		v, err := arith.Eval(line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf(verb, v)
	}
	if tty {
		fmt.Println("goodbye")
	}
	return sc.Err()
}
