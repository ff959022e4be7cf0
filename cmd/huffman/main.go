package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	huffman "github.com/chronos-tachyon/huffmantree"
	"github.com/chronos-tachyon/huffmantree/codestore"
)

// tableSaver is the part of codestore.Store used by the session loop.
type tableSaver interface {
	Save(ctx context.Context, name string, table *huffman.CodeTable) error
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	configFilename := flag.String("config", "", "Configuration file path")
	decodeName := flag.String("decode", "", "Decode bit strings with the stored code table of this name")
	deleteName := flag.String("delete", "", "Delete the stored code table of this name")
	list := flag.Bool("list", false, "List the stored code tables")
	flag.Parse()

	config, err := LoadConfiguration(*configFilename)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading configuration file:", err)
		return 1
	}

	logger := slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel()}))
	printConfiguration(config, logger)

	ctx := context.Background()
	needStore := *decodeName != "" || *deleteName != "" || *list
	if needStore && config.DSN == "" {
		logger.Error("-decode, -delete and -list need a dsn in the configuration", "module", "main")
		return 2
	}

	var store *codestore.Store
	if config.DSN != "" {
		store, err = codestore.Open(config.DSN, logger)
		if err != nil {
			logger.Error("Error connecting to code store: "+err.Error(), "module", "main")
			return 1
		}
		defer store.Close()
		if err := store.Init(ctx); err != nil {
			logger.Error("Error initializing code store: "+err.Error(), "module", "main")
			return 1
		}
	}

	switch {
	case *list:
		err = runList(ctx, os.Stdout, store)
	case *deleteName != "":
		err = runDelete(ctx, os.Stdout, store, *deleteName)
	case *decodeName != "":
		err = runDecode(ctx, os.Stdin, os.Stdout, config, logger, store, *decodeName)
	case store != nil:
		err = run(ctx, os.Stdin, os.Stdout, config, logger, store)
	default:
		err = run(ctx, os.Stdin, os.Stdout, config, logger, nil)
	}
	if err != nil {
		logger.Error(err.Error(), "module", "main")
		return 1
	}
	return 0
}

// run prompts for lines of text until the sentinel or end of input, and
// for each line shows the tree, the encoded bits, and the decoded text.
// A line that cannot be encoded is reported and the loop continues.
func run(ctx context.Context, in io.Reader, out io.Writer, config Configuration, logger *slog.Logger, saver tableSaver) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	fmt.Fprintln(out, "Welcome to Huffman Tree")
	fmt.Fprintf(out, "Enter text to encode (or %s to quit): ", config.Sentinel)

	for session := 1; scanner.Scan(); session++ {
		line := scanner.Text()
		if line == config.Sentinel {
			break
		}

		if err := process(ctx, out, line, session, config, logger, saver); err != nil {
			logger.Warn(err.Error(), "module", "session", "session", session)
			fmt.Fprintf(out, "\nError: %v\n", err)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "******************************************")
		fmt.Fprintf(out, "\nEnter next text to encode (or %s to quit): ", config.Sentinel)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Thank you for your participation.")
	return nil
}

func process(ctx context.Context, out io.Writer, line string, session int, config Configuration, logger *slog.Logger, saver tableSaver) error {
	symbols := huffman.Symbols(line)
	codec, err := huffman.NewCodec(symbols)
	if err != nil {
		return err
	}
	logger.Debug(fmt.Sprintf("Built %s", codec.Tree()), "module", "session", "session", session)

	if config.ShowTree {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "* Huffman Tree visualization *")
		fmt.Fprintln(out, "(Binary tree is presented at a 90 degree angle)")
		fmt.Fprintln(out)
		printTree(out, codec.Tree(), config.Indent)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "*  End of visualization *")
	}

	bits, err := codec.Encode(symbols)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Your currently encoded message is: %s\n", bits)
	fmt.Fprintf(out, "Number of bits in encoded message: %d\n", bits.Len())

	decoded, err := codec.Decode(bits)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Decoding %s yields the message: %s\n", bits, huffman.SymbolsToString(decoded))

	if saver != nil {
		name := fmt.Sprintf("%s-%d", config.TableName, session)
		if err := saver.Save(ctx, name, codec.Table()); err != nil {
			return err
		}
		logger.Info("Saved code table "+name, "module", "session", "session", session)
	}
	return nil
}
