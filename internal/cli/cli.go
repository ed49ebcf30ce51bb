package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"parallel-pi/internal/integrator"
	"parallel-pi/internal/logger"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	PromptSubintervals = "Podaj liczbe podprzedzialow (N): "
	PromptWorkers      = "Podaj liczbe Watkow (N): "
)

// Params holds the values read from the user.
type Params struct {
	Subintervals uint64
	Workers      int
}

// ReadParams prompts on w and reads N and T as whitespace separated tokens
// from r.
func ReadParams(r io.Reader, w io.Writer) (Params, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var params Params

	fmt.Fprint(w, PromptSubintervals)
	token, err := nextToken(scanner, "N")
	if err != nil {
		return Params{}, err
	}
	params.Subintervals, err = strconv.ParseUint(token, 10, 64)
	if err != nil {
		return Params{}, fmt.Errorf("%w: N must be a non-negative 64-bit integer, got %q", ErrInvalidInput, token)
	}

	fmt.Fprint(w, PromptWorkers)
	token, err = nextToken(scanner, "T")
	if err != nil {
		return Params{}, err
	}
	workers, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return Params{}, fmt.Errorf("%w: T must be a 32-bit integer, got %q", ErrInvalidInput, token)
	}
	params.Workers = int(workers)

	return params, nil
}

func nextToken(scanner *bufio.Scanner, name string) (string, error) {
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrInvalidInput, name, err)
	}
	return "", fmt.Errorf("%w: missing value for %s", ErrInvalidInput, name)
}

// Run is the interactive program: read N and T, estimate pi, print the
// estimate and the elapsed time. It returns the process exit code.
func Run(in io.Reader, out, errOut io.Writer) int {
	params, err := ReadParams(in, out)
	if err != nil {
		logger.LogERROR(err.Error())
		fmt.Fprintln(out)
		fmt.Fprintln(errOut, "Error:", err)
		return 1
	}
	logger.LogINFO(fmt.Sprintf("Estimating pi with N=%d, T=%d", params.Subintervals, params.Workers))

	result, err := integrator.Estimate(params.Subintervals, params.Workers)
	if err != nil {
		logger.LogERROR(err.Error())
		fmt.Fprintln(errOut, "Error:", err)
		return 1
	}

	if err := result.Err(); err != nil {
		logger.LogERROR(err.Error())
		fmt.Fprintln(errOut, "Warning:", err)
	}

	fmt.Fprintf(out, "Oszacowana wartosc pi: %s\n", FormatFloat(result.Pi))
	fmt.Fprintf(out, "Czas obliczen: %s s\n", FormatFloat(result.Elapsed.Seconds()))

	logger.LogINFO(fmt.Sprintf("pi=%v elapsed=%v", result.Pi, result.Elapsed))
	return 0
}

// FormatFloat prints v with six significant digits, the default precision of
// a C++ output stream.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
