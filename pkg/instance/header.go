package instance

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lintang-b-s/cvrp/pkg"
	"github.com/lintang-b-s/cvrp/pkg/util"
)

// Header holds the three mandatory header attributes of a .vrp file.
type Header struct {
	NodeCount       int    `vrp:"DIMENSION" validate:"gt=0"`
	VehicleCapacity int    `vrp:"CAPACITY" validate:"gt=0"`
	EdgeWeightType  string `vrp:"EDGE_WEIGHT_TYPE" validate:"required"`
}

var headerValidator = newHeaderValidator()

func newHeaderValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("vrp")
	})
	return validate
}

// invalidFields returns the header keys whose values are missing or not positive.
// A DIMENSION whose N x N cost matrix cannot be indexed by an int is invalid too.
func (h Header) invalidFields() []string {
	err := headerValidator.Struct(h)
	if err == nil {
		if h.NodeCount > math.MaxInt/h.NodeCount {
			return []string{pkg.DIMENSION_KEY}
		}
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

// headerScanner collects header attributes one line at a time.
type headerScanner struct {
	header Header
	found  int
}

func (hs *headerScanner) complete() bool {
	return hs.found >= pkg.NUM_HEADER_ATTRIBUTES
}

// scan records the attribute on line, if any. Keys are matched as prefixes of the
// untrimmed line, anything else is ignored.
func (hs *headerScanner) scan(line string) {
	switch {
	case strings.HasPrefix(line, pkg.DIMENSION_KEY):
		hs.header.NodeCount = parseIntAttribute(line, pkg.DIMENSION_KEY)
		hs.found++
	case strings.HasPrefix(line, pkg.CAPACITY_KEY):
		hs.header.VehicleCapacity = parseIntAttribute(line, pkg.CAPACITY_KEY)
		hs.found++
	case strings.HasPrefix(line, pkg.EDGE_WEIGHT_TYPE_KEY):
		hs.header.EdgeWeightType = parseStringAttribute(line, pkg.EDGE_WEIGHT_TYPE_KEY)
		hs.found++
	}
}

// parseIntAttribute returns the leading integer of the attribute value, or 0.
func parseIntAttribute(line, key string) int {
	val, ok := util.ParseLeadingInt(util.AttributeValue(line, key))
	if !ok {
		return 0
	}
	return val
}

func parseStringAttribute(line, key string) string {
	return strings.TrimSpace(util.AttributeValue(line, key))
}

// missingFields is used when the input ends before all attributes were seen.
func (hs *headerScanner) missingFields() []string {
	fields := hs.header.invalidFields()
	if len(fields) == 0 {
		fields = []string{pkg.DIMENSION_KEY, pkg.CAPACITY_KEY, pkg.EDGE_WEIGHT_TYPE_KEY}
	}
	return fields
}
