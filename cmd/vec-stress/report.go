package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/fatih/color"
)

type Report struct {
	// Configuration
	Scenario *Scenario

	// Results
	TotalTime     time.Duration
	Stats         opStats
	FinalLen      int
	FinalLive     int
	Failure       string
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Vector Stress Test Report

## Scenario
- **Name:** {{.Scenario.Name}}
- **Operations:** {{.Scenario.Ops}}
- **Capacity:** {{.Scenario.Capacity}}
- **Seed:** {{.Scenario.Seed}}
- **Injected Failure Rate:** {{.Scenario.FailRate}}

## Results
- **Total Test Time:** {{.TotalTime}}
- **Operations Run:** {{.Stats.TotalOps}}
{{- range $kind, $count := .Stats.Counts}}
  - {{opname $kind}}: {{$count}}
{{- end}}
- **Capacity Rejections:** {{.Stats.Rejected}}
- **Injected Failures Hit:** {{.Stats.Injected}}
- **Final Length:** {{.FinalLen}}
- **Final Live Instances:** {{.FinalLive}}

## Memory (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

## Verdict
{{verdict .Failure}}
`

	fm := template.FuncMap{
		"opname": func(kind int) string {
			return opNames[kind]
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"verdict": func(failure string) string {
			if failure == "" {
				return color.GreenString("PASS: model and lifetime ledger agree")
			}
			return color.RedString("FAIL: %s", failure)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
