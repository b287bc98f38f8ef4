package svg_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vecscan/vecscan/drivers"
	"github.com/vecscan/vecscan/drivers/svg"
)

func TestDocument(t *testing.T) {
	var buf bytes.Buffer
	d := svg.New(&buf, 100, 80)
	d.MoveTo(0, 0)
	d.LineTo(50, 0)
	d.LineTo(0, 40)
	d.LineTo(0, 0)
	d.DrawString("12:34", 10, 70, 1)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"<svg width='100' height='80'",
		"M 0 0 L 0 80 L 100 80 L 100 0 L 0 0", // border
		"d=' M 0 0 L 50 0 L 0 40 L 0 0'/>",
		"<text x='10' y='70' font-size='12'>12:34</text>",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNoStrokes(t *testing.T) {
	var buf bytes.Buffer
	d := svg.New(&buf, 10, 10)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "d=''") {
		t.Error("empty path element emitted")
	}
}

func TestEscaping(t *testing.T) {
	var buf bytes.Buffer
	d := svg.New(&buf, 10, 10)
	d.DrawString("<&>", 0, 0, 1)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "&lt;&amp;&gt;") {
		t.Errorf("text not escaped:\n%s", buf.String())
	}
}

func TestTimeStatus(t *testing.T) {
	d := svg.New(new(bytes.Buffer), 1, 1)
	if got := d.TimeStatus(); got != drivers.TimeSet {
		t.Errorf("TimeStatus = %d", got)
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errors.New("broken") }

func TestWriteError(t *testing.T) {
	d := svg.New(errWriter{}, 10, 10)
	d.MoveTo(1, 2)
	if err := d.Close(); err == nil {
		t.Error("Close did not report write error")
	}
}
