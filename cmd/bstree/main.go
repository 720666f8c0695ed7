// Command bstree reads integers, adds them to a BSTree in order, removes
// the ones given with -remove and prints every traversal of the result.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bstree/Trees"
)

func main() {
	var in, remove, dir string
	flag.StringVar(&in, "in", "", "file of whitespace separated integers, stdin if empty")
	flag.StringVar(&remove, "remove", "", "comma separated integers to remove after building")
	flag.StringVar(&dir, "dir", "forward", "iterator direction: forward or backward")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("bstree: ")

	var r io.Reader = os.Stdin
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			log.Fatalf("failed to open input: %v", err)
		}
		defer f.Close()
		r = f
	}
	direction := Trees.Forward
	switch dir {
	case "forward":
	case "backward":
		direction = Trees.Backward
	default:
		log.Fatalf("unknown direction %q", dir)
	}

	tree := Trees.New[int]()
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			log.Fatalf("bad input %q: %v", sc.Text(), err)
		}
		tree.Add(v)
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
	if remove != "" {
		for _, s := range strings.Split(remove, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				log.Fatalf("bad value to remove %q: %v", s, err)
			}
			if !tree.Remove(v) {
				log.Printf("%d is not in the tree", v)
			}
		}
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	show := func(name string, visitor func(Trees.Operator[int])) {
		fmt.Fprintf(w, "%-10s", name+":")
		visitor(func(n *Trees.Node[int]) {
			fmt.Fprintf(w, " %d", n.Value())
		})
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "size:      %d\n", tree.Size())
	show("prefix", tree.DepthPrefix)
	show("infix", tree.DepthInfix)
	show("postfix", tree.DepthPostfix)
	show("iterative", tree.IterativeDepthInfix)
	show("breadth", tree.IterativeBreadthPrefix)
	fmt.Fprintf(w, "%-10s", direction.String()+":")
	for it := tree.Iterator(direction).Begin(); !it.End(); it.Next() {
		fmt.Fprintf(w, " %d", it.Value().Value())
	}
	fmt.Fprintln(w)
}
