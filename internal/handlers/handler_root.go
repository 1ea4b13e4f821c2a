package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route segments of the six resources, in API root order.
const (
	routeRecurrences          = "recurrences"
	routeBillStatuses         = "bill-statuses"
	routeBankAccounts         = "bank-accounts"
	routeBills                = "bills"
	routeDueBills             = "due-bills"
	routeBankAccountInstances = "bank-account-instances"
)

var resourceRoutes = []string{
	routeRecurrences,
	routeBillStatuses,
	routeBankAccounts,
	routeBills,
	routeDueBills,
	routeBankAccountInstances,
}

// getAPIRoot godoc
// @Summary List the API resources
// @Description Returns the absolute URL of every resource collection.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func getAPIRoot(basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		prefix := scheme + "://" + c.Request.Host + basePath + "/"

		links := make(map[string]string, len(resourceRoutes))
		for _, name := range resourceRoutes {
			links[name] = prefix + name + "/"
		}
		c.JSON(http.StatusOK, links)
	}
}

// getHealth godoc
// @Summary Show the status of server.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
