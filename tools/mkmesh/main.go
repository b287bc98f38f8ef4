// Mkmesh converts a binary STL model into Go source declaring a compiled-in
// mesh. The render core never parses model files at runtime; this tool is
// the offline half of that decision.
//
// Usage:
//
//	mkmesh -name Gopher -pkg models -scale 0.05 gopher.stl > gopher.go
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
)

var (
	name  = flag.String("name", "Model", "constructor name for the generated mesh")
	pkg   = flag.String("pkg", "models", "package name of the generated file")
	scale = flag.Float64("scale", 1.0, "mesh units per STL unit")
	out   = flag.String("o", "", "output file (default stdout)")
)

// stlTriangle is one record of the binary STL format: a normal, three
// vertices and an attribute word. The normal is dropped; the renderer
// derives everything it needs from the vertices.
type stlTriangle struct {
	Normal [3]float32
	Vertex [3][3]float32
	_      uint16
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %v [flags] <model.stl>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	tris, err := readSTL(f)
	if err != nil {
		log.Fatalln(err)
	}

	source := bytes.NewBuffer(nil)
	fmt.Fprintf(source, "// Code generated by mkmesh from %s. DO NOT EDIT.\n\n", flag.Arg(0))
	fmt.Fprintf(source, "package %s\n\n", *pkg)
	fmt.Fprintf(source, "import (\n\t\"github.com/vecscan/vecscan/fixed\"\n\t\"github.com/vecscan/vecscan/mesh\"\n)\n\n")
	fmt.Fprintf(source, "// %s returns the compiled-in model as a fresh mesh.\n", *name)
	fmt.Fprintf(source, "func %s() mesh.Mesh {\n\treturn mesh.Mesh{\n", *name)
	for _, t := range tris {
		fmt.Fprintf(source, "\t\t{")
		for _, v := range t.Vertex {
			fmt.Fprintf(source, "fixed.P3{X: %d, Y: %d, Z: %d}, ",
				toFix(v[0]), toFix(v[1]), toFix(v[2]))
		}
		fmt.Fprintf(source, "},\n")
	}
	fmt.Fprintf(source, "\t}\n}\n")

	formatted, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}

	w := os.Stdout
	if *out != "" {
		w, err = os.Create(*out)
		if err != nil {
			log.Fatalln(err)
		}
		defer w.Close()
	}
	if _, err := w.Write(formatted); err != nil {
		log.Fatalln(err)
	}
}

func toFix(f float32) int32 {
	return int32(float64(f) * *scale * (1 << 16))
}

func readSTL(r io.Reader) ([]stlTriangle, error) {
	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("stl header: %w", err)
	}
	if bytes.HasPrefix(bytes.TrimSpace(header[:]), []byte("solid")) {
		return nil, fmt.Errorf("ascii stl not supported, convert to binary first")
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("stl count: %w", err)
	}
	tris := make([]stlTriangle, count)
	if err := binary.Read(r, binary.LittleEndian, tris); err != nil {
		return nil, fmt.Errorf("stl triangles: %w", err)
	}
	return tris, nil
}
