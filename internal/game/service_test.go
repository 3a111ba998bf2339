package game

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizePlayerName(t *testing.T) {
	Convey("规范化玩家名", t, func() {
		Convey("两侧空白会被去掉", func() {
			So(NormalizePlayerName("  Alice  "), ShouldEqual, "Alice")
		})

		Convey("空字符串替换为默认名", func() {
			So(NormalizePlayerName(""), ShouldEqual, DefaultPlayerName)
		})

		Convey("纯空白替换为默认名", func() {
			So(NormalizePlayerName("   "), ShouldEqual, DefaultPlayerName)
		})

		Convey("正常的名字保持不变", func() {
			So(NormalizePlayerName("Bob"), ShouldEqual, "Bob")
		})
	})
}

func TestClampLimit(t *testing.T) {
	Convey("收紧limit参数", t, func() {
		Convey("正常范围内的值原样返回", func() {
			So(ClampLimit(5, 10), ShouldEqual, 5)
			So(ClampLimit(100, 10), ShouldEqual, 100)
		})

		Convey("超过上限的值收紧到100", func() {
			So(ClampLimit(1000, 10), ShouldEqual, MaxListLimit)
		})

		Convey("小于1的值回落到默认值", func() {
			So(ClampLimit(0, 10), ShouldEqual, 10)
			So(ClampLimit(-5, 10), ShouldEqual, 10)
		})
	})
}

func TestRound1(t *testing.T) {
	Convey("四舍五入到1位小数", t, func() {
		So(round1(12.34), ShouldEqual, 12.3)
		So(round1(12.35), ShouldAlmostEqual, 12.4, 0.0001)
		So(round1(0), ShouldEqual, 0.0)
	})
}
