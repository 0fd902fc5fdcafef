package positions

import (
	"strings"
	"testing"
)

// TestImport creates a very basic check that the import/export sequence is
// stable for normalized positions.
func TestImport(t *testing.T) {
	sample := `
{"account":"x1234","group":"Core","symbol":"SBE","quantity":100,"price":25.5,"mark":27.1,"cost":-2550,"net_liq":2710,"currency":"USD"}
{"account":"x1234","symbol":"SBUX_052121C150","quantity":-1,"price":3.1,"mark":2.95,"cost":310,"net_liq":-295,"currency":"USD"}
`
	sample = strings.Trim(sample, "\n\t")

	ps, err := ImportPositions(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("cannot import sample: %v", err)
	}

	sb := strings.Builder{}
	if err := ExportPositions(&sb, ps); err != nil {
		t.Fatalf("ExportPositions() has error %v", err)
	}
	got := strings.Trim(sb.String(), "\n\t")

	if got != sample {
		t.Errorf("export/import sequence is not stable got \n%s\n want \n%s\n", got, sample)
	}
}

func TestImportRejectsInvalidRecord(t *testing.T) {
	// net_liq is missing entirely.
	sample := `{"account":"x1234","symbol":"SBUX","price":98.4,"mark":101.25,"cost":-9840}`

	if _, err := ImportPositions(strings.NewReader(sample)); err == nil {
		t.Fatal("ImportPositions() should have failed on a record without net_liq")
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	if _, err := ImportPositions(strings.NewReader("not json\n")); err == nil {
		t.Fatal("ImportPositions() should have failed on a non JSON line")
	}
}
