// Command ordshell is an interactive shell for exploring an
// ordmap.Map[int, string] and an ordset.Set[int], each on its own
// SliceSlab, grounded in the teacher's
// cmd/turdb REPL driver and pkg/cli's line-editing shell — rebuilt here
// on github.com/peterh/liner for history and basic editing instead of
// the teacher's bufio.Reader-based prompt loop.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"slabtree/pkg/btree"
	"slabtree/pkg/ordmap"
	"slabtree/pkg/ordset"
	"slabtree/pkg/slab"
)

const historyFile = ".ordshell_history"

func intLess(a, b int) bool { return a < b }

// session mirrors the teacher's REPL type: it owns the containers under
// test and the line editor, and dispatches one command per input line.
type session struct {
	line *liner.State
	m    *ordmap.Map[int, string]
	s    *ordset.Set[int]
	out  io.Writer
}

func newSession() *session {
	sh := slab.NewSlice[btree.Node[int, string]]()
	sa := slab.NewSlice[btree.Node[int, struct{}]]()
	return &session{
		line: liner.NewLiner(),
		m:    ordmap.NewIn[int, string](sh, intLess),
		s:    ordset.NewIn[int](sa, intLess),
		out:  os.Stdout,
	}
}

func (sess *session) close() {
	sess.line.Close()
}

func main() {
	sess := newSession()
	defer sess.close()

	sess.line.SetCtrlCAborts(true)
	if f, err := os.Open(historyFile); err == nil {
		sess.line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(sess.out, "ordshell - interactive ordmap/ordset demo. .help for commands, .exit to quit.")
	for {
		input, err := sess.line.Prompt("ordshell> ")
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		sess.line.AppendHistory(input)
		if input == ".exit" || input == ".quit" {
			break
		}
		if err := sess.dispatch(input); err != nil {
			fmt.Fprintln(sess.out, "error:", err)
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		sess.line.WriteHistory(f)
		f.Close()
	}
}

func (sess *session) dispatch(line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case ".help":
		sess.printHelp()
	case "map.put":
		return sess.mapPut(args)
	case "map.get":
		return sess.mapGet(args)
	case "map.del":
		return sess.mapDel(args)
	case "map.first":
		k, v, ok := sess.m.FirstKeyValue()
		sess.printEntry(k, v, ok)
	case "map.last":
		k, v, ok := sess.m.LastKeyValue()
		sess.printEntry(k, v, ok)
	case "map.len":
		fmt.Fprintln(sess.out, sess.m.Len())
	case "map.iter":
		it := sess.m.Iter()
		for {
			k, v, ok := it.Next()
			if !ok {
				break
			}
			fmt.Fprintf(sess.out, "%d -> %q\n", k, v)
		}
	case "map.validate":
		if err := sess.m.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(sess.out, "ok")
	case "set.add":
		return sess.setAdd(args)
	case "set.del":
		return sess.setDel(args)
	case "set.has":
		return sess.setHas(args)
	case "set.elements":
		fmt.Fprintln(sess.out, sess.s.Elements())
	default:
		return fmt.Errorf("unknown command %q (try .help)", cmd)
	}
	return nil
}

func (sess *session) printHelp() {
	fmt.Fprintln(sess.out, `commands:
  map.put <k> <v>    insert or overwrite
  map.get <k>        fetch a value
  map.del <k>        remove a key
  map.first          smallest entry
  map.last           largest entry
  map.len            entry count
  map.iter           dump entries in key order
  map.validate       check tree invariants
  set.add <k>        add an element
  set.del <k>        remove an element
  set.has <k>        membership test
  set.elements       dump elements in order
  .exit              quit`)
}

func (sess *session) printEntry(k int, v string, ok bool) {
	if !ok {
		fmt.Fprintln(sess.out, "(empty)")
		return
	}
	fmt.Fprintf(sess.out, "%d -> %q\n", k, v)
}

func parseKey(args []string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("expected a key argument")
	}
	return strconv.Atoi(args[0])
}

func (sess *session) mapPut(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: map.put <k> <v>")
	}
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	sess.m.Insert(k, strings.Join(args[1:], " "))
	return nil
}

func (sess *session) mapGet(args []string) error {
	k, err := parseKey(args)
	if err != nil {
		return err
	}
	v, ok := sess.m.Get(k)
	sess.printEntry(k, v, ok)
	return nil
}

func (sess *session) mapDel(args []string) error {
	k, err := parseKey(args)
	if err != nil {
		return err
	}
	_, ok := sess.m.Remove(k)
	if !ok {
		fmt.Fprintln(sess.out, "(not found)")
	}
	return nil
}

func (sess *session) setAdd(args []string) error {
	k, err := parseKey(args)
	if err != nil {
		return err
	}
	if sess.s.Insert(k) {
		fmt.Fprintln(sess.out, "added")
	} else {
		fmt.Fprintln(sess.out, "already present")
	}
	return nil
}

func (sess *session) setDel(args []string) error {
	k, err := parseKey(args)
	if err != nil {
		return err
	}
	if sess.s.Remove(k) {
		fmt.Fprintln(sess.out, "removed")
	} else {
		fmt.Fprintln(sess.out, "(not found)")
	}
	return nil
}

func (sess *session) setHas(args []string) error {
	k, err := parseKey(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(sess.out, sess.s.Contains(k))
	return nil
}
