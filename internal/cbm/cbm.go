// Package cbm computes cargo volume and volumetric weight for the public
// calculator. Dimensions arrive in centimetres.
package cbm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidInput = errors.New("all_dimensions_must_be_numeric")

type Input struct {
	Length   string `json:"length"`
	Width    string `json:"width"`
	Height   string `json:"height"`
	Quantity string `json:"quantity"`
}

type Result struct {
	Volume           string `json:"volume"`
	VolumetricWeight string `json:"volumetricWeight"`
}

// Calculate returns volume in cubic metres and volumetric weight in
// kilograms using the 1:6000 air freight divisor. Any non-numeric or
// negative input is rejected outright.
func Calculate(in Input) (Result, error) {
	length, err := parseDim(in.Length)
	if err != nil {
		return Result{}, err
	}
	width, err := parseDim(in.Width)
	if err != nil {
		return Result{}, err
	}
	height, err := parseDim(in.Height)
	if err != nil {
		return Result{}, err
	}
	quantity, err := parseDim(in.Quantity)
	if err != nil {
		return Result{}, err
	}

	base := length * width * height * quantity
	return Result{
		Volume:           fmt.Sprintf("%.3f", base/1_000_000),
		VolumetricWeight: fmt.Sprintf("%.2f", base/6000),
	}, nil
}

func parseDim(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, ErrInvalidInput
	}
	return v, nil
}
