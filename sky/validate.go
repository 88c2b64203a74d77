// SPDX-License-Identifier: MIT
package sky

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/armaan-choudhary/zola/constellation"
)

// skyValidate is shared by every record in the package.
var skyValidate *validator.Validate

func init() {
	skyValidate = validator.New()

	// nonblank rejects empty and whitespace-only strings.
	_ = skyValidate.RegisterValidation("nonblank", validateNonBlank)

	// Report fields by their JSON names.
	skyValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Normalize trims the text fields and fills defaults for Emoji, Style and
// Shape.
func (in StarInput) Normalize() StarInput {
	in.Message = strings.TrimSpace(in.Message)
	in.SenderName = strings.TrimSpace(in.SenderName)
	in.Emoji = strings.TrimSpace(in.Emoji)
	if in.Emoji == "" {
		in.Emoji = DefaultEmoji
	}
	if in.Style == "" {
		in.Style = StyleClassic
	}
	if in.Shape == "" {
		in.Shape = ShapeCircle
	}

	return in
}

// Validate reports ErrInvalidStar naming the first failing field.
func (in StarInput) Validate() error {
	return wrapValidation(skyValidate.Struct(in), ErrInvalidStar)
}

// Validate reports ErrInvalidSky naming the first failing field.
func (in SkyInput) Validate() error {
	return wrapValidation(skyValidate.Struct(in), ErrInvalidSky)
}

// ValidatePosition checks that a star sits inside the 0..100 viewport.
func ValidatePosition(x, y float64) error {
	if x < 0 || x > 100 || y < 0 || y > 100 {
		return fmt.Errorf("position (%g,%g) outside 0..100: %w", x, y, ErrInvalidStar)
	}

	return nil
}

func wrapValidation(err error, sentinel error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("field %s fails %q: %w", fe.Field(), fe.Tag(), sentinel)
	}

	return fmt.Errorf("%v: %w", err, sentinel)
}

// Points maps stars onto constellation points keyed by star ID. A star
// outside the viewport fails with ErrInvalidStar.
func Points(stars []Star) ([]constellation.Point, error) {
	pts := make([]constellation.Point, len(stars))
	for i, s := range stars {
		if err := ValidatePosition(s.PosX, s.PosY); err != nil {
			return nil, fmt.Errorf("star %q: %w", s.ID, err)
		}
		pts[i] = constellation.Point{ID: s.ID, X: s.PosX, Y: s.PosY}
	}
	if err := constellation.Validate(pts); err != nil {
		return nil, err
	}

	return pts, nil
}
