package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/uvalib/virgo4-jwt/v4jwt"
)

type clientContext struct {
	svc        *ServiceContext // shared service state
	reqID      string          // internally generated
	start      time.Time       // internally set
	claims     *v4jwt.V4Claims // patron, if any
	localizer  *i18n.Localizer // per-request localization
	acceptLang string          // first language requested by client
}

func newClientContext(svc *ServiceContext, ctx *gin.Context) *clientContext {
	c := clientContext{svc: svc, start: time.Now(), reqID: newRequestID()}

	if claims, err := getJWTClaims(ctx); err == nil {
		c.claims = claims
	}

	c.acceptLang = strings.TrimSpace(strings.Split(ctx.GetHeader("Accept-Language"), ",")[0])
	if c.acceptLang == "" {
		c.acceptLang = "en"
	}
	c.localizer = i18n.NewLocalizer(svc.Translations, c.acceptLang)

	return &c
}

func (c *clientContext) printf(prefix, format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)

	if prefix != "" {
		str = strings.Join([]string{prefix, str}, " ")
	}

	log.Printf("[%s] %s", c.reqID, str)
}

func (c *clientContext) log(format string, args ...interface{}) {
	c.printf("", format, args...)
}

func (c *clientContext) warn(format string, args ...interface{}) {
	c.printf("WARN:", format, args...)
}

func (c *clientContext) err(format string, args ...interface{}) {
	c.printf("ERROR:", format, args...)
}

func (c *clientContext) elapsedMS() int64 {
	return int64(time.Since(c.start) / time.Millisecond)
}

// hasPatron is true when the request carried valid patron claims
func (c *clientContext) hasPatron() bool {
	return c.claims != nil && c.claims.UserID != ""
}

// localize returns the translation for id, or fallback if there is none
func (c *clientContext) localize(id string, fallback string) string {
	if c.localizer == nil {
		return fallback
	}
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
