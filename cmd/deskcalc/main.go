package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"deskcalc"
)

func main() {
	log.SetFlags(0)
	var echo bool
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.Parse()

	if flag.NArg() == 0 {
		interact()
		return
	}
	for _, arg := range flag.Args() {
		a, err := deskcalc.Parse(arg)
		if err != nil {
			log.Fatal(err)
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := a.Eval()
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(deskcalc.FormatResult(r))
	}
}

// interact runs a keypad loop. Each input line is appended to the
// expression, except for the commands = (evaluate), b (backspace),
// c (clear), and q (quit). The display is echoed after every keypress.
func interact() {
	s := deskcalc.NewSession(func(d string) { fmt.Println(d) })
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		switch line := sc.Text(); line {
		case "q":
			return
		case "=":
			s.Evaluate()
		case "b":
			s.Backspace()
		case "c":
			s.Clear()
		default:
			s.Append(line)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}
