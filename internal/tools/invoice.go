package tools

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultInvoiceCSV = "Fake_Invoice_Data.csv"

var defaultThresholds = []int{7, 14, 21}

// invoiceDateFormats are the accepted due date layouts, tried in order.
var invoiceDateFormats = []string{"2006-01-02", "01/02/2006", "02-01-2006"}

// amountPrinter renders dollar amounts with thousands grouping.
var amountPrinter = message.NewPrinter(language.English)

func parseInvoiceDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range invoiceDateFormats {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", value)
}

func (s *Server) handleInvoiceFollowup(w http.ResponseWriter, r *http.Request) {
	var req InvoiceFollowupRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.CSVName == "" {
		req.CSVName = defaultInvoiceCSV
	}
	if req.Thresholds == nil {
		req.Thresholds = defaultThresholds
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Today != "" {
		parsed, err := parseInvoiceDate(req.Today)
		if err != nil {
			s.sendError(w, http.StatusBadRequest, err.Error())
			return
		}
		today = parsed
	}

	thresholds := normalizeThresholds(req.Thresholds)
	if len(thresholds) == 0 {
		s.sendError(w, http.StatusBadRequest, "thresholds must contain positive integers")
		return
	}

	path, err := ResolveDocPath(s.cfg.DocsDir, req.CSVName)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "csv_name must resolve inside the document directory")
		return
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.sendError(w, http.StatusNotFound, fmt.Sprintf("csv not found: %s", req.CSVName))
			return
		}
		s.logger.Error("failed to open csv", "name", req.CSVName, "error", err)
		s.sendError(w, http.StatusInternalServerError, "could not read csv")
		return
	}
	defer func() { _ = file.Close() }()

	resp, err := followupEmails(file, thresholds, today, req.CSVName)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.sendJSON(w, http.StatusOK, resp)
}

// normalizeThresholds dedupes, drops non-positive values and sorts ascending.
func normalizeThresholds(thresholds []int) []int {
	out := make([]int, 0, len(thresholds))
	for _, t := range thresholds {
		if t > 0 && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}

// followupEmails walks the invoice CSV and renders one reminder per invoice
// whose overdue age clears at least the lowest threshold. Malformed rows are
// skipped rather than failing the run.
func followupEmails(file io.Reader, thresholds []int, today time.Time, csvName string) (*InvoiceFollowupResponse, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv has no header row")
	}
	columns := map[string]int{}
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, required := range []string{"invoice_number", "broker", "due_date", "amount"} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("csv missing columns: %s", strings.Join(missing, ", "))
	}

	resp := &InvoiceFollowupResponse{Emails: []FollowupEmail{}, Source: csvName}
	for {
		row, err := reader.Read()
		if err != nil {
			break
		}
		resp.Processed++

		field := func(name string) string {
			idx := columns[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		due, err := parseInvoiceDate(field("due_date"))
		if err != nil {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(field("amount"), ",", ""), 64)
		if err != nil {
			continue
		}

		daysOverdue := int(today.Sub(due).Hours() / 24)
		if daysOverdue <= 0 {
			continue
		}

		tier := 0
		for _, t := range thresholds {
			if daysOverdue >= t {
				tier = t
			} else {
				break
			}
		}
		if tier == 0 {
			continue
		}

		email := renderFollowupEmail(field("invoice_number"), field("broker"), due, amount, daysOverdue, tier)
		resp.Emails = append(resp.Emails, email)
	}

	resp.Overdue = len(resp.Emails)
	return resp, nil
}

func renderFollowupEmail(invoice, broker string, due time.Time, amount float64, daysOverdue, tier int) FollowupEmail {
	dueDate := due.Format("2006-01-02")
	amountStr := amountPrinter.Sprintf("$%.2f", amount)
	greeting := fmt.Sprintf("Hi %s,", broker)

	var body string
	switch {
	case tier >= 21:
		body = fmt.Sprintf(
			"%s\n\nThis is a third reminder that invoice %s for %s was due on %s "+
				"and is now %d days overdue. Please arrange payment immediately or reply with an "+
				"update so we can reconcile our records.\n\n"+
				"If payment has been made, please share the remittance details.\n\n"+
				"Thank you,\nAccounts Receivable",
			greeting, invoice, amountStr, dueDate, daysOverdue,
		)
	case tier >= 14:
		body = fmt.Sprintf(
			"%s\n\nFriendly follow-up on invoice %s for %s due %s. "+
				"Our records show it is %d days overdue. Could you share a quick status or "+
				"expected payment date?\n\n"+
				"Thanks so much,\nAccounts Receivable",
			greeting, invoice, amountStr, dueDate, daysOverdue,
		)
	default:
		body = fmt.Sprintf(
			"%s\n\nQuick reminder: invoice %s for %s was due %s and appears to be "+
				"%d days overdue. Please let us know if you need the invoice resent or have any "+
				"questions.\n\n"+
				"Best,\nAccounts Receivable",
			greeting, invoice, amountStr, dueDate, daysOverdue,
		)
	}

	return FollowupEmail{
		InvoiceNumber: invoice,
		Broker:        broker,
		DueDate:       dueDate,
		Amount:        amount,
		DaysOverdue:   daysOverdue,
		Tier:          tier,
		Subject:       fmt.Sprintf("Invoice %s is %d days overdue", invoice, daysOverdue),
		Body:          body,
	}
}
