package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// timestampHandler serves a plain-text liveness probe: the current
// time in milliseconds since epoch.
func timestampHandler(c *gin.Context) {
	c.String(http.StatusOK, strconv.FormatInt(time.Now().UnixMilli(), 10))
}

const homePage = `<!doctype html>
<html>
<body>
<a href="/auth/steam/login">Sign in through Steam</a>
</body>
</html>
`

func homeHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}
