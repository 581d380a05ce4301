package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	eq "github.com/rvr313/OTUS-Calculator"
)

func main() {
	log.SetFlags(0)
	var (
		verb string
		with [][2]string
		echo bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&echo, "echo", false, "print compiled RPN programs")
	flag.Parse()

	ctx := eq.NewContext()
	for _, d := range with {
		nm, vl := d[0], d[1]
		r := ctx.Calculate(vl)
		if !r.OK {
			log.Fatalf("setting %s: %s", nm, r.Message)
		}
		ctx.Set(nm, r.Value)
	}

	verb += "\n"
	eval := func(src string) {
		if echo {
			e, err := eq.Parse(src)
			if err != nil {
				fmt.Println(err)
				return
			}
			fmt.Printf("%v : ", e)
		}
		r := ctx.Calculate(src)
		if !r.OK {
			fmt.Println(r.Message)
			return
		}
		fmt.Printf(verb, r.Value)
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			eval(arg)
		}
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		eval(line)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}
