package params

import (
	"regexp"
	"strconv"

	"github.com/ishworgurung/tilix/internal/errors"
	"github.com/ishworgurung/tilix/internal/logger"
)

// Geometry grammar, tried in order. The full form carries a mandatory sign
// on each offset; the dimensions-only form must not shadow it, so it is only
// attempted after the full form fails.
var (
	geometryFullRegex = regexp.MustCompile(`^(\d+)x(\d+)([+-]\d+)([+-]\d+)$`)
	geometryDimsRegex = regexp.MustCompile(`^(\d+)x(\d+)$`)
)

// parseGeometry parses a geometry descriptor like "800x600+10-20" or
// "800x600". A string that matches neither form logs an error and yields all
// zeros; geometry failures are never fatal.
func parseGeometry(geometry string) (width, height, x, y int) {
	if m := geometryFullRegex.FindStringSubmatch(geometry); m != nil {
		width, _ = strconv.Atoi(m[1])
		height, _ = strconv.Atoi(m[2])
		x, _ = strconv.Atoi(m[3])
		y, _ = strconv.Atoi(m[4])
		return width, height, x, y
	}
	if m := geometryDimsRegex.FindStringSubmatch(geometry); m != nil {
		width, _ = strconv.Atoi(m[1])
		height, _ = strconv.Atoi(m[2])
		return width, height, 0, 0
	}
	logger.Error("%v", errors.GeometryInvalid(geometry))
	return 0, 0, 0, 0
}
