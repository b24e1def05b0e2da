package lexicon

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/contract-portal/backend/pkg/logger"
)

// Lexicon holds the keyword tables and spelling corrections that drive the
// query pipeline. A Lexicon is immutable after construction; updates go
// through Provider.Reload, which publishes a fresh snapshot.
type Lexicon struct {
	PartsKeywords    []string
	CreateKeywords   []string
	ContractKeywords []string
	HelpKeywords     []string
	Corrections      map[string]string
	DisplayColumns   []DisplayColumn
}

// DisplayColumn maps a query keyword to the portal column it should surface.
// Order matters: display fields are emitted in table order.
type DisplayColumn struct {
	Keyword string
	Column  string
}

func (l *Lexicon) HasPartsKeyword(text string) bool {
	return containsAny(text, l.PartsKeywords)
}

func (l *Lexicon) HasCreateKeyword(text string) bool {
	return containsAny(text, l.CreateKeywords)
}

func (l *Lexicon) HasContractKeyword(text string) bool {
	return containsAny(text, l.ContractKeywords)
}

func (l *Lexicon) HasHelpKeyword(text string) bool {
	return containsAny(text, l.HelpKeywords)
}

// containsAny is the shared first-match-in-ordered-list primitive used for
// keyword membership throughout the pipeline.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Provider hands out the current Lexicon snapshot. Readers never block and
// never observe a partially loaded lexicon: Reload builds the replacement
// fully before a single atomic pointer swap.
type Provider struct {
	current atomic.Pointer[Lexicon]
	paths   Paths
}

type Paths struct {
	Keywords    string
	Corrections string
}

func NewProvider(paths Paths) *Provider {
	p := &Provider{paths: paths}
	lex, err := Load(paths)
	if err != nil {
		logger.Warn("Lexicon load failed, using built-in defaults", zap.Error(err))
		lex = Defaults()
	}
	p.current.Store(lex)
	return p
}

// NewStaticProvider wraps a fixed lexicon, mainly for tests.
func NewStaticProvider(lex *Lexicon) *Provider {
	p := &Provider{}
	p.current.Store(lex)
	return p
}

func (p *Provider) Current() *Lexicon {
	return p.current.Load()
}

// Reload re-reads the configured files and atomically publishes the result.
// On failure the previous snapshot stays in place.
func (p *Provider) Reload() (*Lexicon, error) {
	lex, err := Load(p.paths)
	if err != nil {
		return nil, err
	}
	p.current.Store(lex)
	logger.Info("Lexicon reloaded",
		zap.Int("parts_keywords", len(lex.PartsKeywords)),
		zap.Int("create_keywords", len(lex.CreateKeywords)),
		zap.Int("contract_keywords", len(lex.ContractKeywords)),
		zap.Int("corrections", len(lex.Corrections)),
	)
	return lex, nil
}
