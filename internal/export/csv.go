// Package export renders the appointment collection as CSV and iCalendar payloads.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rafaelmartins/agendapet/internal/task"
)

// csvHeader is the fixed column layout consumed by the spreadsheet importers
// the clinics already use. Do not reorder.
const csvHeader = `Tutor,Pet,Contato,Tipo,Preço,Status Pagamento,Horário`

// CSV renders one row per appointment under the fixed header. Text fields
// are always quoted, the price is written bare, and absent fields fall
// back to the empty string or 0.
func CSV(tasks []*task.Task) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, t := range tasks {
		b.WriteString(csvRow(t))
		b.WriteByte('\n')
	}
	return b.String()
}

func csvRow(t *task.Task) string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s",
		quote(t.Client),
		quote(t.PetName),
		quote(t.Contact),
		quote(t.Type),
		strconv.FormatFloat(t.Price, 'f', -1, 64),
		quote(string(t.PaymentStatus)),
		quote(t.Deadline),
	)
}

// quote wraps a field in double quotes, doubling embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSVFilename returns the download name for an export taken at the given time.
func CSVFilename(now time.Time) string {
	return "agendamentos-" + now.Format("2006-01-02") + ".csv"
}
