// Command xmltok tokenizes an XML document and prints one line per
// token, for manual conformance checking against the tokenizer core.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/corvid-xml/xmltok"
)

func main() {
	file := flag.String("file", "-", "XML file to tokenize, or '-' for stdin")
	maxName := flag.Int("max-name-length", 0, "maximum accepted length for a Name (0 means unbounded)")
	flag.Parse()

	in := os.Stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatalf("open %q: %s", *file, err)
		}
		defer f.Close()
		in = f
	}

	var opts []xmltok.Option
	if *maxName > 0 {
		opts = append(opts, xmltok.WithMaxNameLength(*maxName))
	}

	tz := xmltok.NewTokenizerFromReader(in, opts...)
	var tok xmltok.Token
	for {
		if err := tz.NextToken(&tok); err != nil {
			log.Fatalf("tokenize: %s", err)
		}
		if tok.Kind == xmltok.KindEndOfFile {
			return
		}
		printToken(&tok)
	}
}

func printToken(tok *xmltok.Token) {
	switch tok.Kind {
	case xmltok.KindCharacter:
		fmt.Printf("%-8s %q\n", tok.Kind, tok.Char)
	case xmltok.KindOpenTag:
		fmt.Printf("%-8s <%s> attrs=%v self-closing=%v\n", tok.Kind, tok.Name, tok.Attributes, tok.SelfClosing)
	case xmltok.KindCloseTag:
		fmt.Printf("%-8s </%s>\n", tok.Kind, tok.Name)
	case xmltok.KindDeclaration:
		fmt.Printf("%-8s version=%q encoding=%q standalone=%v\n", tok.Kind, tok.Version, tok.Encoding, tok.Standalone)
	case xmltok.KindDoctype:
		fmt.Printf("%-8s name=%q publicID=%q systemID=%q\n", tok.Kind, tok.Name, tok.PublicID, tok.SystemID)
	case xmltok.KindProcessingInstruction:
		fmt.Printf("%-8s target=%q %q\n", tok.Kind, tok.Target, tok.Text)
	case xmltok.KindComment, xmltok.KindCData:
		fmt.Printf("%-8s %q\n", tok.Kind, tok.Text)
	default:
		fmt.Printf("%-8s\n", tok.Kind)
	}
}
