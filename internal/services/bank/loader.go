package bank

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strings"

	"veriban/internal/services/iban"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Bank codes are national identifiers: 8 digits for a German Bankleitzahl,
// 4 letters for a Dutch bank code, and so on.
var bankCodePattern = regexp.MustCompile(`^[A-Z0-9]{4,11}$`)

var csvHeader = []string{"bank_code", "bic", "bank_name", "country"}

// CSVLoader reads directory records from a CSV file with the header
// bank_code,bic,bank_name,country. Rows that fail validation are logged
// and skipped; a file that yields no usable rows is an error.
type CSVLoader struct {
	Path string
}

func (l *CSVLoader) Load(_ context.Context) ([]Record, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "open directory file %s", l.Path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "read directory header from %s", l.Path)
	}
	if err := checkHeader(header); err != nil {
		return nil, errors.Wrapf(err, "directory file %s", l.Path)
	}

	var records []Record
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logrus.WithError(err).Warnf("skipping unreadable directory row %d", line)
			continue
		}
		rec, ok := parseRow(row)
		if !ok {
			logrus.Warnf("skipping invalid directory row %d: %v", line, row)
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, errors.Wrapf(ErrNoRecords, "load %s", l.Path)
	}
	return records, nil
}

func checkHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return errors.Errorf("expected header %v, got %v", csvHeader, header)
	}
	for i, col := range header {
		if strings.ToLower(strings.TrimSpace(col)) != csvHeader[i] {
			return errors.Errorf("expected header %v, got %v", csvHeader, header)
		}
	}
	return nil
}

func parseRow(row []string) (Record, bool) {
	if len(row) != 4 {
		return Record{}, false
	}
	rec := Record{
		BankCode: canonical(row[0]),
		BIC:      canonical(row[1]),
		BankName: strings.TrimSpace(row[2]),
		Country:  canonical(row[3]),
	}
	if !bankCodePattern.MatchString(rec.BankCode) {
		return Record{}, false
	}
	if !iban.IsBIC(rec.BIC) {
		return Record{}, false
	}
	if rec.BankName == "" || len(rec.Country) != 2 {
		return Record{}, false
	}
	return rec, true
}
