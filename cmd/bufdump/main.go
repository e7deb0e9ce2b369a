// bufdump inspects a file containing a raw buffer image: it parses the
// header, reports the interpretation mode, and previews the payload, chasing
// spill indicators to their temp file.
//
// Usage:
//
//	bufdump [flags] <image-file>
package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wippyai/hostbuf"
	"github.com/wippyai/hostbuf/codec"
	"github.com/wippyai/hostbuf/payload"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to TOML config file")
		codecName  = flag.String("codec", "", "Structural codec for document preview (json, msgpack, cbor)")
		maxPayload = flag.Int("max-payload", 0, "Override the payload size bound")
		noColor    = flag.Bool("no-color", false, "Disable styled output")
		verbose    = flag.BoolP("verbose", "v", false, "Enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: bufdump [flags] <image-file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// Flags take precedence over config file values.
	if *codecName != "" {
		cfg.Codec = *codecName
	}
	if *maxPayload > 0 {
		cfg.MaxPayload = *maxPayload
	}
	if *noColor {
		cfg.NoColor = true
	}

	if err := run(flag.Arg(0), cfg, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, cfg config, verbose bool) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	buf, err := hostbuf.FromSlice(image)
	if err != nil {
		return err
	}

	structural, ok := payload.ByName(cfg.Codec)
	if !ok {
		return fmt.Errorf("unknown codec %q", cfg.Codec)
	}

	opts := []codec.Option{codec.WithPayloadCodec(structural)}
	if cfg.TempDir != "" {
		opts = append(opts, codec.WithTempDir(cfg.TempDir))
	}
	if cfg.MaxPayload > 0 {
		opts = append(opts, codec.WithMaxPayloadSize(cfg.MaxPayload))
	}
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()
		opts = append(opts, codec.WithLogger(log))
	}
	c := codec.New(opts...)

	st := newStyles(!cfg.NoColor)
	fmt.Println(st.title.Render("Buffer: " + path))
	fmt.Println(st.row("image size", fmt.Sprintf("%d bytes", len(image))))
	fmt.Println(st.row("capacity", fmt.Sprintf("%d bytes", buf.Cap())))

	n := buf.Length()
	switch {
	case n >= 0:
		fmt.Println(st.row("mode", "inline"))
		fmt.Println(st.row("length", fmt.Sprintf("%d", n)))
	default:
		fmt.Println(st.row("mode", "spill"))
		fmt.Println(st.row("path length", fmt.Sprintf("%d", -n)))
		spillPath, ok, err := c.SpillPath(buf)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println(st.row("spill file", spillPath))
			if fi, err := os.Stat(spillPath); err != nil {
				fmt.Println(st.warn.Render("  spill file unreadable: " + err.Error()))
			} else {
				fmt.Println(st.row("spill size", fmt.Sprintf("%d bytes", fi.Size())))
			}
		}
	}

	data, err := c.Bytes(buf)
	if err != nil {
		fmt.Println(st.warn.Render("payload not decodable: " + err.Error()))
		return nil
	}
	preview := data
	if len(preview) > 64 {
		preview = preview[:64]
	}
	fmt.Println(st.row("payload", fmt.Sprintf("% x", preview)))
	if utf8.Valid(data) {
		fmt.Println(st.row("text", string(preview)))
	}
	if doc, err := c.JSON(buf); err == nil {
		fmt.Println(st.row("document", fmt.Sprintf("%v (%s, %d keys)", doc, structural.Name(), len(doc))))
	}
	return nil
}
