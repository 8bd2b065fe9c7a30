// Package main реализует команду «staticlint» на базе multichecker.
// Набор анализаторов подобран под код сервиса: HTTP-хендлеры, работа
// с контекстами и файлами хранилища.
//
// Использование:
//
//	go install ./cmd/staticlint
//	staticlint ./...
//
// Включённые анализаторы:
//   - printf, shadow, structtag, nilness, unusedresult из golang.org/x/tools;
//   - httpresponse: использование http.Response до проверки ошибки;
//   - lostcancel: потерянный cancel от context.WithTimeout/WithCancel;
//   - errorsas: неверный второй аргумент errors.As;
//   - exitmain: прямой вызов os.Exit в main() пакета main;
//   - staticcheck SA*, а также simple S1000.
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
)

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		unusedresult.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		errorsas.Analyzer,
		ExitMainAnalyzer,
	}

	for _, la := range staticcheck.Analyzers {
		if strings.HasPrefix(la.Analyzer.Name, "SA") {
			list = append(list, la.Analyzer)
		}
	}

	for _, la := range simple.Analyzers {
		if la.Analyzer.Name == "S1000" {
			list = append(list, la.Analyzer)
		}
	}

	return list
}

func main() {
	multichecker.Main(analyzers()...)
}
