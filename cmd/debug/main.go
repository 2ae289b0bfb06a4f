package main

import (
	"flag"
	"fmt"
	"os"

	"xiangqi/internal/setup"
	"xiangqi/internal/xiangqi"
)

func main() {
	from := flag.String("from", "(3, 8)", "source square, \"(row, col)\"")
	to := flag.String("to", "(3, 5)", "destination square, \"(row, col)\"")
	flag.Parse()

	b := setup.NewInitialBoard()
	fmt.Println(b)

	src, err := setup.ParsePosition(*from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	dst, err := setup.ParsePosition(*to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	legal, err := xiangqi.IsValidMove(b, src, dst)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	win := false
	if legal {
		win, _ = xiangqi.CheckWin(b, src, dst)
	}
	fmt.Printf("%v -> %v: legal=%v win=%v\n", src, dst, legal, win)
}
