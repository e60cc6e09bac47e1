package main

import (
	"encoding/json"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ironsheep/text-contrast-mcp/internal/calculator"
	"github.com/ironsheep/text-contrast-mcp/internal/imaging"
	"github.com/ironsheep/text-contrast-mcp/internal/layout"
)

// rectFlag parses "x,y,width,height" into a screen rectangle.
type rectFlag struct {
	rect image.Rectangle
	set  bool
}

var _ pflag.Value = (*rectFlag)(nil)

func (f *rectFlag) String() string {
	if !f.set {
		return ""
	}
	r := f.rect
	return fmt.Sprintf("%d,%d,%d,%d", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (f *rectFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("want x,y,width,height, got %q", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", p, err)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return fmt.Errorf("width and height must not be negative, got %dx%d", v[2], v[3])
	}
	f.rect = image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3])
	f.set = true
	return nil
}

func (f *rectFlag) Type() string {
	return "rect"
}

func (f *rectFlag) size() imaging.Size {
	return imaging.Size{W: f.rect.Dx(), H: f.rect.Dy()}
}

// luminanceOutput is printed as JSON by the luminance command.
type luminanceOutput struct {
	Luminance float32          `json:"luminance"`
	TextTone  imaging.TextTone `json:"text_tone"`
	Algorithm string           `json:"algorithm"`
}

func newLuminanceCmd() *cobra.Command {
	var (
		imagePath string
		algorithm string
		back      rectFlag
		front     rectFlag
	)

	cmd := &cobra.Command{
		Use:   "luminance",
		Short: "Compute the background luminance under one front view",
		Example: `  text-contrast-mcp luminance --image hero.png --back 0,0,360,200 --front 24,150,200,32
  text-contrast-mcp luminance --image hero.png --back 0,0,360,200 --front 24,150,200,32 --algorithm median`,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := calculator.AlgorithmByName(algorithm)
			if err != nil {
				return err
			}
			buf, err := imaging.NewImageCache().LoadPixelBuffer(imagePath)
			if err != nil {
				return err
			}

			tree := layout.NewTree()
			tree.Place("back", back.rect)
			tree.Place("front", front.rect)
			notifier := &layout.Notifier{}

			calc, err := calculator.New(calculator.Config{
				Geometry: tree,
				Source:   layout.NewImageView(buf, back.size()),
				Notifier: notifier,
				FrontID:  "front",
				BackID:   "back",
				Logger:   newLogger(),
			})
			if err != nil {
				return err
			}

			var out *luminanceOutput
			var failure error
			calc.Configure(calculator.ListenerFuncs{
				OnDone: func(l float32) {
					out = &luminanceOutput{Luminance: l, TextTone: imaging.TextToneFor(l), Algorithm: algorithm}
				},
				OnFail: func(err error) { failure = err },
			}, alg)
			if err := calc.AttachTrigger(); err != nil {
				return err
			}
			notifier.Settle()

			if failure != nil {
				return failure
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "background image file")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "mean",
		"color reduction ("+strings.Join(calculator.AlgorithmNames(), ", ")+")")
	cmd.Flags().Var(&back, "back", "image view on screen as x,y,width,height")
	cmd.Flags().Var(&front, "front", "front view on screen as x,y,width,height")
	for _, name := range []string{"image", "back", "front"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
