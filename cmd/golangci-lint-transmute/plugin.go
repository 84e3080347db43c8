// golangcilinttransmute package provides a plugin for golangci-lint to
// integrate the transmute analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-transmute binary that reports enum alias
// directive errors without running transmutegen.
package golangcilinttransmute

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/coolCucumber-cat/transmute-guard/pkg/transmuteanalysis"
)

func init() {
	register.Plugin("transmute", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return TransmuteLinter{}, nil
}

type TransmuteLinter struct{}

func (TransmuteLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{transmuteanalysis.Analyzer}, nil
}

// GetLoadMode asks for type information, which directive members need.
func (TransmuteLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
