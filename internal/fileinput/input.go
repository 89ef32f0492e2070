package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location with the text scanned there.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line scanning through a Queue of one or more
// input streams, tracking the location of every line to facilitate user
// feedback.
type Input struct {
	Queue []io.Reader
	Scan  Line

	sc  *bufio.Scanner
	err error
}

// Next advances to the next line, moving on through Queue as each stream is
// exhausted. Returns false once all input is consumed or after any read
// error, which is then available from Err.
func (in *Input) Next() bool {
	for in.err == nil {
		if in.sc == nil && !in.nextIn() {
			return false
		}
		if in.sc.Scan() {
			in.Scan.Line++
			in.Scan.Text = in.sc.Text()
			return true
		}
		in.err = in.sc.Err()
		in.sc = nil
	}
	return false
}

// Err returns any error encountered while reading input; reaching the end of
// the last stream is not an error.
func (in *Input) Err() error {
	if in.err == nil {
		return nil
	}
	return fmt.Errorf("%v: %w", in.Scan.Location, in.err)
}

func (in *Input) nextIn() bool {
	in.Scan = Line{}
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.sc = bufio.NewScanner(r)
	in.Scan.Name = nameOf(r)
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// Named gives r a Name for Location reporting.
func Named(name string, r io.Reader) io.Reader { return namedReader{r, name} }

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
