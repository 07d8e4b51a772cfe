package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// parseNumber decodes a bare JSON number and renders it for the response
// message. Integers keep their decimal digits at any magnitude. Floats use
// the shortest round-trip form, keep a ".0" suffix when integral and switch
// to exponent notation outside [1e-4, 1e16).
func parseNumber(body []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotANumber, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: trailing data", ErrNotANumber)
	}

	n, ok := v.(json.Number)
	if !ok {
		return "", fmt.Errorf("%w: got %T", ErrNotANumber, v)
	}

	literal := n.String()
	if !strings.ContainsAny(literal, ".eE") {
		i, ok := new(big.Int).SetString(literal, 10)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNotANumber, literal)
		}
		if i.Sign() < 0 {
			return "", ErrNegativeNumber
		}
		return i.String(), nil
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNumberOutOfRange, err)
	}
	if f < 0 {
		return "", ErrNegativeNumber
	}
	return formatFloat(f), nil
}

func formatFloat(f float64) string {
	exp := decimalExponent(f)
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// decimalExponent returns the exponent of f in shortest scientific notation.
func decimalExponent(f float64) int {
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if err != nil {
		return 0
	}
	return exp
}
