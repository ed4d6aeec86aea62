package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zapponejosh/feriados-api/internal/holidays"
)

func fixedNow() time.Time {
	return time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(fixedNow)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEasterCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"pascoa", "2023"}, "2023-04-09"},
		{[]string{"pascoa"}, "2024-03-31"}, // current year
	}

	for _, tt := range tests {
		out, err := run(t, tt.args...)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if strings.TrimSpace(out) != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, out, tt.want)
		}
	}
}

func TestListCmd_JSON(t *testing.T) {
	out, err := run(t, "list", "2023", "--tipo", "nacional")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var hs []holidays.Holiday
	if err := json.Unmarshal([]byte(out), &hs); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(hs) != 12 {
		t.Errorf("len = %d, want 12", len(hs))
	}
}

func TestListCmd_CSVWithSubsecao(t *testing.T) {
	out, err := run(t, "ls", "2023", "-t", "municipal,estadual", "-s", "Dourados", "-f", "csv")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := "date,name,type,uf,subsecao\n" +
		"2023-10-11,Criação do Estado de Mato Grosso do Sul,estadual,MS,\n" +
		"2023-12-20,Aniversário de Dourados,municipal,MS,Dourados\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestListCmd_Errors(t *testing.T) {
	if _, err := run(t, "list", "1800"); !errors.Is(err, holidays.ErrYearOutOfRange) {
		t.Errorf("list 1800 error = %v, want range error", err)
	}
	if _, err := run(t, "list", "dois mil"); err == nil {
		t.Error("list with invalid year expected error")
	}
	if _, err := run(t, "list", "2023", "--tipo", "federal"); err == nil {
		t.Error("list with invalid tipo expected error")
	}
	if _, err := run(t, "list", "2023", "--format", "xml"); err == nil {
		t.Error("list with invalid format expected error")
	}
}

func TestSubsecoesCmd(t *testing.T) {
	out, err := run(t, "subsecoes")
	if err != nil {
		t.Fatalf("subsecoes: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(holidays.Subsecoes())+1 {
		t.Errorf("got %d lines, want %d", len(lines), len(holidays.Subsecoes())+1)
	}
	if !strings.Contains(out, "Campo Grande") {
		t.Errorf("output missing Campo Grande:\n%s", out)
	}
}
