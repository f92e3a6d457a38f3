package export

import (
	"strings"
	"testing"
	"time"

	"github.com/rafaelmartins/agendapet/internal/task"
)

func TestCSVHeader(t *testing.T) {
	out := CSV(nil)
	want := "Tutor,Pet,Contato,Tipo,Preço,Status Pagamento,Horário\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCSVRows(t *testing.T) {
	tasks := []*task.Task{
		{
			Client:        "Maria Silva",
			PetName:       "Rex",
			Contact:       "11 99999-0000",
			Type:          "banho",
			Price:         80.5,
			PaymentStatus: task.PaymentPaid,
			Deadline:      "15/06/2024 14:30",
		},
		{Client: "Ana"},
	}

	out := CSV(tasks)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	want := `"Maria Silva","Rex","11 99999-0000","banho",80.5,"pago","15/06/2024 14:30"`
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}

	// Absent fields default to empty strings and a bare zero price.
	wantEmpty := `"Ana","","","",0,"",""`
	if lines[2] != wantEmpty {
		t.Errorf("row = %q, want %q", lines[2], wantEmpty)
	}
}

func TestCSVQuoting(t *testing.T) {
	tasks := []*task.Task{
		{Client: `Loja "Pet" Feliz`, Price: 100},
	}

	out := CSV(tasks)
	if !strings.Contains(out, `"Loja ""Pet"" Feliz"`) {
		t.Errorf("embedded quotes not doubled: %q", out)
	}
}

func TestCSVFilename(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	if got, want := CSVFilename(now), "agendamentos-2024-06-15.csv"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestICS(t *testing.T) {
	parser := task.NewParser(nil)
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)

	tasks := []*task.Task{
		{ID: 1, Client: "Maria", PetName: "Rex", Type: "banho", Deadline: "15/06/2024 14:30"},
		{ID: 2, Client: "Ana", Deadline: task.DeadlineUndefined},
	}

	out := ICS(parser, tasks, now)

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatalf("not a VCALENDAR payload: %q", out)
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("got %d events, want 1 (undated appointments are skipped)", got)
	}
	if !strings.Contains(out, "UID:agendamento-1@agendapet") {
		t.Error("missing event UID")
	}
	if !strings.Contains(out, "Rex - banho") {
		t.Error("missing event summary")
	}
}

func TestICSFilename(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	if got, want := ICSFilename(now), "agendamentos-2024-06-15.ics"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
