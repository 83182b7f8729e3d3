package xe

import "github.com/go-orz/orz"

var (
	ErrInvalidParams    = orz.NewError(10400, "参数无效")
	ErrInvalidToken     = orz.NewError(10403, "令牌无效")
	ErrPermissionDenied = orz.NewError(10401, "您没有权限查看/修改/删除此数据")

	ErrIncorrectPassword    = orz.NewError(10001, "账户或密码错误")
	ErrIncorrectOldPassword = orz.NewError(10003, "原密码错误")

	ErrTradeNotFound     = orz.NewError(10010, "交易记录不存在")
	ErrInvalidDirection  = orz.NewError(10011, "交易方向无效")
	ErrInvalidOutcome    = orz.NewError(10012, "平仓结果无效")
	ErrTradeNotOpen      = orz.NewError(10013, "交易已平仓")
	ErrInvalidImage      = orz.NewError(10014, "图片格式不正确或大小超过限制")
	ErrAttachmentInUse   = orz.NewError(10015, "附件已关联其他交易")
	ErrTooManyImages     = orz.NewError(10016, "截图数量超过上限")
	ErrInvalidDateRange  = orz.NewError(10017, "日期范围无效")
	ErrInvalidPreference = orz.NewError(10018, "偏好设置无效")
)
