// Package main provides a custom linter for golangci-lint that flags
// hand-written degree/radian factors such as math.Pi/180 outside the
// skyangle package.
package main

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"slices"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"
)

func init() {
	register.Plugin("rawangle", New)
}

// Settings defines the configuration for the rawangle linter.
type Settings struct {
	// AllowedPackages may spell out the conversion factors themselves.
	AllowedPackages []string `json:"allowed-packages" mapstructure:"allowed-packages"`
}

// PluginRawAngle is the rawangle linter plugin.
type PluginRawAngle struct {
	settings Settings
}

// New creates a new instance of the rawangle linter.
func New(settings any) (register.LinterPlugin, error) {
	s, err := register.DecodeSettings[Settings](settings)
	if err != nil {
		return nil, err
	}

	if len(s.AllowedPackages) == 0 {
		s.AllowedPackages = []string{"github.com/ahrav/go-skyangle/pkg/skyangle"}
	}

	return &PluginRawAngle{settings: s}, nil
}

// BuildAnalyzers returns the analyzers for this linter.
func (f *PluginRawAngle) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{
		{
			Name: "rawangle",
			Doc:  "Checks for math.Pi/180 style conversions that should use skyangle",
			Run:  f.run,
		},
	}, nil
}

// GetLoadMode returns the load mode for this linter.
func (f *PluginRawAngle) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

func (f *PluginRawAngle) run(pass *analysis.Pass) (any, error) {
	if slices.Contains(f.settings.AllowedPackages, pass.Pkg.Path()) {
		return nil, nil
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			bin, ok := n.(*ast.BinaryExpr)
			if !ok || bin.Op != token.QUO {
				return true
			}

			var hint string
			switch {
			case f.mentionsPi(pass, bin.X) && isHalfTurn(pass, bin.Y):
				hint = "skyangle.FromDegree"
			case containsHalfTurn(pass, bin.X) && f.mentionsPi(pass, bin.Y):
				hint = "skyangle.ToDegree"
			default:
				return true
			}

			pass.Report(analysis.Diagnostic{
				Pos:      bin.Pos(),
				End:      bin.End(),
				Message:  "hand-written degree/radian factor; use " + hint + " instead",
				Category: "rawangle",
			})
			return false
		})
	}

	return nil, nil
}

// mentionsPi reports whether expr references math.Pi anywhere.
func (f *PluginRawAngle) mentionsPi(pass *analysis.Pass, expr ast.Expr) bool {
	found := false
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Pi" {
			return !found
		}
		if c, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Const); ok && c.Pkg() != nil && c.Pkg().Path() == "math" {
			found = true
		}
		return !found
	})
	return found
}

// containsHalfTurn reports whether expr or any of its operands is the
// constant 180.
func containsHalfTurn(pass *analysis.Pass, expr ast.Expr) bool {
	found := false
	ast.Inspect(expr, func(n ast.Node) bool {
		if e, ok := n.(ast.Expr); ok && isHalfTurn(pass, e) {
			found = true
		}
		return !found
	})
	return found
}

// isHalfTurn reports whether expr is the constant 180.
func isHalfTurn(pass *analysis.Pass, expr ast.Expr) bool {
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok || tv.Value == nil {
		return false
	}
	return constant.Compare(tv.Value, token.EQL, constant.MakeInt64(180))
}
