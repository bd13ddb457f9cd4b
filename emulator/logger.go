package emulator

import "github.com/sirupsen/logrus"

// Logger used for diagnostics. Replace it to route the output elsewhere
var Log logrus.FieldLogger = logrus.StandardLogger()
