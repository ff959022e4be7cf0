package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	huffman "github.com/chronos-tachyon/huffmantree"
)

type tableLoader interface {
	Load(ctx context.Context, name string) (*huffman.CodeTable, error)
}

type tableLister interface {
	Names(ctx context.Context) ([]string, error)
}

type tableDeleter interface {
	Delete(ctx context.Context, name string) error
}

// runDecode loads the code table stored under name and decodes each line
// of input with it until the sentinel or end of input.  A line that does
// not decode is reported and the loop continues.
func runDecode(ctx context.Context, in io.Reader, out io.Writer, config Configuration, logger *slog.Logger, loader tableLoader, name string) error {
	table, err := loader.Load(ctx, name)
	if err != nil {
		return err
	}
	tree, err := huffman.TreeFromCodeTable(table)
	if err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("Loaded %s as %s", name, table), "module", "decode")

	if config.ShowTree {
		fmt.Fprintln(out)
		printTree(out, tree, config.Indent)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	fmt.Fprintf(out, "\nEnter bits to decode with %s (or %s to quit): ", name, config.Sentinel)
	for scanner.Scan() {
		line := scanner.Text()
		if line == config.Sentinel {
			break
		}

		bits := huffman.BitString(line)
		if decoded, err := huffman.Decode(bits, tree); err != nil {
			logger.Warn(err.Error(), "module", "decode", "table", name)
			fmt.Fprintf(out, "\nError: %v\n", err)
		} else {
			fmt.Fprintf(out, "\nDecoding %s yields the message: %s\n", bits, huffman.SymbolsToString(decoded))
		}

		fmt.Fprintf(out, "\nEnter bits to decode with %s (or %s to quit): ", name, config.Sentinel)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}

func runList(ctx context.Context, out io.Writer, lister tableLister) error {
	names, err := lister.Names(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func runDelete(ctx context.Context, out io.Writer, deleter tableDeleter, name string) error {
	if err := deleter.Delete(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted code table %s\n", name)
	return nil
}
