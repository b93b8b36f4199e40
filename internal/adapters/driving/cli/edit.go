package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/retouch-cli/internal/logger"
)

const mainMenu = `Enter your choice:
0. Display Current Image
1. Apply Filter
2. Resize Image
3. Rotate Image
4. Adjust Brightness and Contrast
5. Crop Image
6. Save Image
7. Reset All Changes
Press 'q' to quit
`

const filterMenu = `Choose a filter:
1. Grayscale
2. Gaussian Blur
3. Canny Edge Detection
4. Sharpen
`

const continuePrompt = "Press 'q' to quit or any other key to continue"

func runEdit(cmd *cobra.Command, args []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}
	if svc.NewSession == nil {
		return errors.New("session service not configured")
	}

	settings := domain.DefaultSettings()
	if svc.Settings != nil {
		if s, err := svc.Settings.Get(); err == nil {
			settings = *s
		} else {
			logger.Warn("Using default settings: %v", err)
		}
	}

	path := settings.Input.DefaultImage
	if len(args) > 0 {
		path = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	session := svc.NewSession(true)
	if err := session.Load(ctx, path); err != nil {
		return fmt.Errorf("could not open or find the image %s: %w", path, err)
	}

	e := &editor{
		ctx:     ctx,
		session: session,
		params:  settings.Filter,
		in:      bufio.NewReader(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
	}
	return e.run()
}

// editor drives one session from numbered menu choices read line by line.
type editor struct {
	ctx     context.Context
	session driving.SessionService
	params  domain.FilterParams
	in      *bufio.Reader
	out     io.Writer
}

// run loops until the user quits or input ends. Both exit cleanly.
func (e *editor) run() error {
	for {
		fmt.Fprint(e.out, mainMenu)

		choice, err := e.line()
		if err != nil {
			return nil
		}
		if choice == "q" {
			fmt.Fprintln(e.out, "Quitting...")
			return nil
		}

		if err := e.dispatch(choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			e.report(err)
		}

		fmt.Fprintln(e.out, continuePrompt)
		next, err := e.line()
		if err != nil {
			return nil
		}
		if next == "q" {
			fmt.Fprintln(e.out, "Quitting...")
			return nil
		}
	}
}

func (e *editor) dispatch(choice string) error {
	switch choice {
	case "0":
		return e.session.Display(e.ctx)
	case "1":
		return e.filter()
	case "2":
		return e.resize()
	case "3":
		return e.rotate()
	case "4":
		return e.adjust()
	case "5":
		return e.crop()
	case "6":
		return e.save()
	case "7":
		return e.session.Reset(e.ctx)
	default:
		fmt.Fprintln(e.out, "Invalid choice")
		return nil
	}
}

func (e *editor) filter() error {
	fmt.Fprint(e.out, filterMenu)
	input, err := e.line()
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return domain.ErrInvalidFilter
	}
	return e.session.ApplyFilter(e.ctx, domain.FilterKind(n), e.params)
}

func (e *editor) resize() error {
	width, err := e.readInt("Enter the width of the image: ")
	if err != nil {
		return err
	}
	height, err := e.readInt("Enter the height of the image: ")
	if err != nil {
		return err
	}
	return e.session.Resize(e.ctx, width, height)
}

func (e *editor) rotate() error {
	angle, err := e.readFloat("Enter the angle for the rotation of the image: ")
	if err != nil {
		return err
	}
	return e.session.Rotate(e.ctx, angle)
}

func (e *editor) adjust() error {
	contrast, err := e.readFloat("Enter the contrast value: ")
	if err != nil {
		return err
	}
	brightness, err := e.readFloat("Enter the brightness value: ")
	if err != nil {
		return err
	}
	return e.session.AdjustBrightnessContrast(e.ctx, contrast, brightness)
}

func (e *editor) crop() error {
	prompts := []string{
		"Enter the x-coordinate of the top-left corner of the ROI: ",
		"Enter the y-coordinate of the top-left corner of the ROI: ",
		"Enter the width of the ROI: ",
		"Enter the height of the ROI: ",
	}
	var roi [4]int
	for i, p := range prompts {
		v, err := e.readInt(p)
		if err != nil {
			return err
		}
		roi[i] = v
	}
	return e.session.Crop(e.ctx, roi[0], roi[1], roi[2], roi[3])
}

func (e *editor) save() error {
	var path string
	for path == "" {
		fmt.Fprint(e.out, "Enter the filename to save the image (including extension): ")
		input, err := e.line()
		if err != nil {
			return err
		}
		path = input
	}

	if err := e.session.Save(e.ctx, path); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Image saved as %s\n", path)
	return nil
}

// report prints an operation failure and keeps the loop going.
func (e *editor) report(err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidFilter):
		fmt.Fprintln(e.out, "Invalid filter choice")
	case errors.Is(err, domain.ErrUnsupportedFormat):
		fmt.Fprintf(e.out, "Could not save: %v\n", err)
	default:
		fmt.Fprintf(e.out, "Error: %v\n", err)
	}
	logger.Debug("Operation failed: %v", err)
}

// readInt prompts until a whole number is entered.
func (e *editor) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(e.out, prompt)
		input, err := e.line()
		if err != nil {
			return 0, err
		}
		if v, err := strconv.Atoi(input); err == nil {
			return v, nil
		}
		fmt.Fprintln(e.out, "Please enter a whole number.")
	}
}

// readFloat prompts until a finite number is entered.
func (e *editor) readFloat(prompt string) (float64, error) {
	for {
		fmt.Fprint(e.out, prompt)
		input, err := e.line()
		if err != nil {
			return 0, err
		}
		if v, err := strconv.ParseFloat(input, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
		fmt.Fprintln(e.out, "Please enter a number.")
	}
}

// line reads one trimmed line. A final line without a newline is
// returned; io.EOF is only reported once nothing is left.
func (e *editor) line() (string, error) {
	input, err := e.in.ReadString('\n')
	if err != nil && (input == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
