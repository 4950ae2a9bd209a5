// utils/i18n.go
package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const DefaultLocale = "en"

var SupportedLocales = []string{"en", "zh", "ko"}

// Message keys shared by every resource handler.
const (
	MsgFetchSuccess  = "fetch_success"
	MsgCreateSuccess = "create_success"
	MsgUpdateSuccess = "update_success"
	MsgDeleteSuccess = "delete_success"
	MsgPartialSave   = "partial_save"
	MsgNotFound      = "not_found"
	MsgInvalidInput  = "invalid_input"
	MsgInvalidDate   = "invalid_date"
	MsgInvalidAction = "invalid_action"
	MsgPastBooking   = "past_booking"
	MsgDuplicate     = "duplicate"
	MsgAuthRequired  = "auth_required"
	MsgBadAPIVersion = "bad_api_version"
	MsgServerError   = "server_error"
)

var messages = map[string]map[string]string{
	"en": {
		MsgFetchSuccess:  "Fetched successfully",
		MsgCreateSuccess: "Created successfully",
		MsgUpdateSuccess: "Updated successfully",
		MsgDeleteSuccess: "Deleted successfully",
		MsgPartialSave:   "Some items could not be saved",
		MsgNotFound:      "Resource not found",
		MsgInvalidInput:  "Invalid input",
		MsgInvalidDate:   "Invalid date",
		MsgInvalidAction: "Unsupported action",
		MsgPastBooking:   "Booking time must be in the future",
		MsgDuplicate:     "Resource already exists",
		MsgAuthRequired:  "Authentication required",
		MsgBadAPIVersion: "Unsupported API version",
		MsgServerError:   "Internal server error",
	},
	"zh": {
		MsgFetchSuccess:  "获取成功",
		MsgCreateSuccess: "创建成功",
		MsgUpdateSuccess: "更新成功",
		MsgDeleteSuccess: "删除成功",
		MsgPartialSave:   "部分内容保存失败",
		MsgNotFound:      "资源不存在",
		MsgInvalidInput:  "输入无效",
		MsgInvalidDate:   "日期无效",
		MsgInvalidAction: "不支持的操作",
		MsgPastBooking:   "预约时间必须是将来的时间",
		MsgDuplicate:     "资源已存在",
		MsgAuthRequired:  "需要登录",
		MsgBadAPIVersion: "不支持的 API 版本",
		MsgServerError:   "服务器内部错误",
	},
	"ko": {
		MsgFetchSuccess:  "조회 성공",
		MsgCreateSuccess: "생성 성공",
		MsgUpdateSuccess: "수정 성공",
		MsgDeleteSuccess: "삭제 성공",
		MsgPartialSave:   "일부 항목을 저장하지 못했습니다",
		MsgNotFound:      "리소스를 찾을 수 없습니다",
		MsgInvalidInput:  "잘못된 입력입니다",
		MsgInvalidDate:   "잘못된 날짜입니다",
		MsgInvalidAction: "지원하지 않는 작업입니다",
		MsgPastBooking:   "예약 시간은 미래여야 합니다",
		MsgDuplicate:     "이미 존재하는 리소스입니다",
		MsgAuthRequired:  "로그인이 필요합니다",
		MsgBadAPIVersion: "지원하지 않는 API 버전입니다",
		MsgServerError:   "서버 내부 오류",
	},
}

func IsSupportedLocale(locale string) bool {
	for _, l := range SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// ResolveLocale picks the request locale from the `locale` query param,
// then the Accept-Language header, defaulting to English.
func ResolveLocale(c *gin.Context) string {
	if l := c.Query("locale"); l != "" {
		if IsSupportedLocale(l) {
			return l
		}
		return DefaultLocale
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if len(tag) >= 2 && IsSupportedLocale(strings.ToLower(tag[:2])) {
			return strings.ToLower(tag[:2])
		}
	}
	return DefaultLocale
}

// T looks up a localized message, falling back to English.
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	return messages[DefaultLocale][key]
}
