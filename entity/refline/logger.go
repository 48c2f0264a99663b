package refline

import "github.com/sirupsen/logrus"

// log 参考线模块的日志记录器
var log = logrus.WithField("module", "refline")
