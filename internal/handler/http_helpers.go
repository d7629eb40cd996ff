package handler

import (
	"encoding/gob"
	"fmt"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const flashSessionKey = "_flashes"

func init() {
	// 会话底层用 gob 序列化,自定义类型需要先注册
	gob.Register([]flashMessage{})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// flash 消息跨一次重定向存活:写入会话,下一次渲染时取出并清空。
type flashMessage struct {
	Category string
	Message  string
}

func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	var flashes []flashMessage
	if raw := session.Get(flashSessionKey); raw != nil {
		if existing, ok := raw.([]flashMessage); ok {
			flashes = existing
		}
	}
	flashes = append(flashes, flashMessage{Category: category, Message: message})
	session.Set(flashSessionKey, flashes)
	session.Save()
}

func takeFlashes(c *gin.Context) []flashMessage {
	session := sessions.Default(c)
	raw := session.Get(flashSessionKey)
	if raw == nil {
		return nil
	}
	session.Delete(flashSessionKey)
	session.Save()
	flashes, ok := raw.([]flashMessage)
	if !ok {
		return nil
	}
	return flashes
}
