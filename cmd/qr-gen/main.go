package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alapierre/qr-logo-generator/batch"
	"github.com/alapierre/qr-logo-generator/config"
	"github.com/alapierre/qr-logo-generator/qr"
	"github.com/alapierre/qr-logo-generator/version"

	"github.com/akamensky/argparse"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const sampleText = "我是一个苦逼的程序猿"

func main() {

	parser := argparse.NewParser("qr-gen", "QR code generator with logo overlay, version "+version.Version)

	texts := parser.StringList("t", "text", &argparse.Options{Required: false, Help: "Text to encode, repeat for a batch", Default: []string{sampleText}})
	inPath := parser.String("i", "in", &argparse.Options{Required: false, Help: "File with one text per line, '-' reads stdin"})
	logoPath := parser.String("l", "logo", &argparse.Options{Required: false, Help: "Logo image placed in the center of the code"})
	out := parser.String("o", "out", &argparse.Options{Required: false, Help: "Output image path, '-' writes to stdout", Default: "qr.png"})
	zipPath := parser.String("z", "zip", &argparse.Options{Required: false, Help: "Write every text as an entry of this zip archive"})

	format := parser.Selector("f", "format", []string{"png", "bmp", "tiff"}, &argparse.Options{Required: false, Help: "Output image format"})
	ec := parser.Selector("e", "ec", []string{"L", "M", "Q", "H"}, &argparse.Options{Required: false, Help: "Error correction level"})
	backend := parser.Selector("", "backend", []string{"zxing", "skip2"}, &argparse.Options{Required: false, Help: "QR encoding library"})
	scaling := parser.Selector("", "scaling", []string{"clamp", "fit"}, &argparse.Options{Required: false, Help: "Logo scaling policy"})
	margin := parser.Int("m", "margin", &argparse.Options{Required: false, Help: "Quiet zone in modules", Default: -1})
	size := parser.Int("s", "size", &argparse.Options{Required: false, Help: "Image size in pixels", Default: -1})
	logoSize := parser.Int("", "logo-size", &argparse.Options{Required: false, Help: "Largest logo side in pixels", Default: -1})

	continueOnError := parser.Flag("", "continue", &argparse.Options{Help: "Skip texts that cannot be encoded instead of stopping the batch"})
	verify := parser.Flag("", "verify", &argparse.Options{Help: "Decode each image to check it is scannable"})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Help: "Debug logging"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	setupLogging(*verbose)

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Configuration error: ", err)
		os.Exit(1)
	}

	if err := applyFlags(&cfg, flagValues{
		format: *format, ec: *ec, backend: *backend, scaling: *scaling,
		margin: *margin, size: *size, logoSize: *logoSize, verify: *verify,
	}); err != nil {
		fmt.Println("Invalid option: ", err)
		os.Exit(1)
	}

	gen, err := qr.New(cfg)
	if err != nil {
		fmt.Println("Invalid configuration: ", err)
		os.Exit(1)
	}

	items := *texts
	if strings.TrimSpace(*inPath) != "" {
		items, err = readTexts(*inPath)
		if err != nil {
			fmt.Println("Error reading texts: ", err)
			os.Exit(1)
		}
	}
	if len(items) == 0 {
		fmt.Println("Nothing to encode")
		os.Exit(1)
	}

	if *zipPath != "" {
		policy := batch.AbortOnError
		if *continueOnError {
			policy = batch.ContinueOnError
		}
		if err := writeArchive(gen, policy, *zipPath, *logoPath, items); err != nil {
			fmt.Println("Error writing archive: ", err)
			os.Exit(1)
		}
		return
	}

	if len(items) > 1 {
		fmt.Println("Several texts given, use --zip to write them all")
		os.Exit(1)
	}

	img, err := gen.EncodeFile(items[0], *logoPath)
	if err != nil {
		fmt.Println("Error generating QR code: ", err)
		os.Exit(1)
	}

	if *out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println("Refusing to write a binary image to the terminal, redirect stdout")
			os.Exit(1)
		}
		if err := gen.Write(os.Stdout, img); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing QR code: ", err)
			os.Exit(1)
		}
		return
	}

	if err := gen.WriteFile(*out, img); err != nil {
		fmt.Println("Error writing QR code: ", err)
		os.Exit(1)
	}
	fmt.Printf("QR code saved %s\n", *out)
}

func setupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := logrus.InfoLevel
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level = lvl
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}

func writeArchive(gen *qr.Generator, policy batch.Policy, path, logoPath string, items []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	report, err := batch.New(gen, batch.WithPolicy(policy)).Encode(f, logoPath, items)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	for _, item := range report.Failed {
		fmt.Println("Skipped: ", item)
	}
	fmt.Printf("Archive saved %s with %d entries\n", path, len(report.Entries))
	if len(report.Failed) > 0 {
		return fmt.Errorf("%d of %d texts failed", len(report.Failed), len(items))
	}
	return nil
}

func readTexts(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var texts []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		texts = append(texts, line)
	}
	return texts, sc.Err()
}
