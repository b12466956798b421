package mal

import (
	"fmt"
	"io"
	"os"

	"github.com/glycerine/greenpack/msgp"
)

// WriteForms streams xs as one msgpack array whose elements are the
// msgpack-encoded wire forms, each wrapped as bin.
func WriteForms(f io.Writer, xs []Sexp) error {
	w := msgp.NewWriter(f)
	err := w.WriteArrayHeader(uint32(len(xs)))
	if err != nil {
		return err
	}
	var buf []byte
	for i, x := range xs {
		wf := ToWire(x)
		buf, err = wf.MarshalMsg(buf[:0])
		if err != nil {
			return fmt.Errorf("encoding form %d: '%v'", i, err)
		}
		err = w.WriteBytes(buf)
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadForms reverses WriteForms.
func ReadForms(f io.Reader) ([]Sexp, error) {
	r := msgp.NewReader(f)
	n, err := r.ReadArrayHeader()
	if err != nil {
		return nil, err
	}
	xs := make([]Sexp, 0, n)
	var buf []byte
	for i := uint32(0); i < n; i++ {
		buf, err = r.ReadBytes(buf[:0])
		if err != nil {
			return nil, fmt.Errorf("reading form %d: '%v'", i, err)
		}
		x, err := MsgpackToSexp(buf)
		if err != nil {
			return nil, fmt.Errorf("decoding form %d: '%v'", i, err)
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func FileExists(name string) bool {
	fi, err := os.Stat(name)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}

// Bsave writes xs to a new file at path. It refuses to
// overwrite an existing file.
func Bsave(path string, xs []Sexp) error {
	if FileExists(path) {
		return fmt.Errorf("bsave refusing to write to existing file '%s'", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bsave sees error trying to create file '%s': '%v'", path, err)
	}
	defer f.Close()

	err = WriteForms(f, xs)
	if err != nil {
		return err
	}
	VPrintf("bsave wrote %d forms to '%s'\n", len(xs), path)
	return f.Close()
}

// Bload reads the forms saved by Bsave.
func Bload(path string) ([]Sexp, error) {
	if !FileExists(path) {
		return nil, fmt.Errorf("file '%s' does not exist", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadForms(f)
}
