package helper_util

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetPageParams reads page (1-based) and size from the query string.
func GetPageParams(c *gin.Context) (page int, size int, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 0, 0, err
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

// GetIDList reads a comma separated id list from the path or query.
func GetIDList(c *gin.Context, name string) []string {
	raw := c.Param(name)
	if raw == "" {
		raw = c.Query(name)
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
