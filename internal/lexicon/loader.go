package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load builds a lexicon from the configured key-value files, starting from
// the built-in defaults. A missing file leaves the corresponding defaults in
// place; a file that exists but cannot be parsed is an error.
//
// Keywords file format, one set per line:
//
//	parts=parts,part number,spare
//	create=create,how to
//	contract=contract,agreement
//
// Corrections file format, one pair per line ("=" or "->" separated):
//
//	contrct=contract
//	shw -> show
//
// Lines starting with "#" and blank lines are ignored in both files.
func Load(paths Paths) (*Lexicon, error) {
	lex := Defaults()

	if paths.Keywords != "" {
		if err := loadKeywords(paths.Keywords, lex); err != nil {
			return nil, err
		}
	}
	if paths.Corrections != "" {
		if err := loadCorrections(paths.Corrections, lex); err != nil {
			return nil, err
		}
	}

	return lex, nil
}

func loadKeywords(path string, lex *Lexicon) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open keywords file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return fmt.Errorf("invalid keywords line: %q", line)
		}

		keywords := splitList(value)
		switch strings.TrimSpace(strings.ToLower(key)) {
		case "parts":
			lex.PartsKeywords = keywords
		case "create":
			lex.CreateKeywords = keywords
		case "contract":
			lex.ContractKeywords = keywords
		case "help":
			lex.HelpKeywords = keywords
		default:
			return fmt.Errorf("unknown keyword set: %q", key)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read keywords file: %w", err)
	}
	return nil
}

func loadCorrections(path string, lex *Lexicon) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open corrections file: %w", err)
	}
	defer file.Close()

	corrections := make(map[string]string)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var wrong, correct string
		if before, after, found := strings.Cut(line, "->"); found {
			wrong, correct = before, after
		} else if before, after, found := strings.Cut(line, "="); found {
			wrong, correct = before, after
		} else {
			return fmt.Errorf("invalid corrections line: %q", line)
		}

		wrong = strings.ToLower(strings.TrimSpace(wrong))
		correct = strings.ToLower(strings.TrimSpace(correct))
		if wrong == "" || correct == "" {
			return fmt.Errorf("invalid corrections line: %q", line)
		}
		corrections[wrong] = correct
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read corrections file: %w", err)
	}

	lex.Corrections = corrections
	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
