package service

import (
	"strings"
	"testing"
	"time"

	"github.com/jilyoungservice-beep/contractgenius/backend/model"
)

func TestRenderHTMLProcurement(t *testing.T) {
	svc := NewRenderService()
	d := model.NewContractData(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	out, err := svc.RenderHTML(d)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"采 购 合 同",
		"CTR-2025-001",
		"2025-01-01",
		"未来科技股份有限公司",
		"环球供应链有限公司",
		"高性能处理器 A1",
		"第一条：采购标的",
		"甲方采购乙方货物",
		"¥1000500.00", // 1000*250.50 + 500*1500.00
		"250.50",
		"合同专用章",
		"size: A4",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected rendered document to contain %q", want)
		}
	}
}

func TestRenderHTMLFreight(t *testing.T) {
	svc := NewRenderService()
	d := model.NewContractData(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d = model.SetType(d, model.TypeFreight)

	out, err := svc.RenderHTML(d)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "货 运 代 理 合 同") {
		t.Error("Expected freight title")
	}
	if !strings.Contains(html, "第一条：货物详情") {
		t.Error("Expected freight article heading")
	}
	if !strings.Contains(html, "甲方委托乙方代理货物运输") {
		t.Error("Expected freight preamble action")
	}
	if strings.Contains(html, "采 购 合 同") {
		t.Error("Procurement wording must not leak into the freight document")
	}
}

func TestRenderHTMLCustomClause(t *testing.T) {
	svc := NewRenderService()
	d := model.NewContractData(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	// Empty custom clause: no sixth article
	out, err := svc.RenderHTML(d)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	if strings.Contains(string(out), "第六条") {
		t.Error("Expected no sixth article for an empty custom clause")
	}

	d = model.UpdateClause(d, model.ClauseCustom, "本合同一式两份。")
	out, err = svc.RenderHTML(d)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	if !strings.Contains(string(out), "第六条：补充条款") {
		t.Error("Expected a sixth article when the custom clause is set")
	}
	if !strings.Contains(string(out), "本合同一式两份。") {
		t.Error("Expected custom clause text in the document")
	}
}

func TestRenderHTMLEscapesUserText(t *testing.T) {
	svc := NewRenderService()
	d := model.NewContractData(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d = model.UpdateParty(d, model.SideA, model.PartyFieldName, `<script>alert("x")</script>`)

	out, err := svc.RenderHTML(d)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	if strings.Contains(string(out), `<script>alert`) {
		t.Error("Expected user text to be HTML-escaped")
	}
}

func TestRenderHTMLSealPerParty(t *testing.T) {
	svc := NewRenderService()
	d := model.NewContractData(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	out, err := svc.RenderHTML(d)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	html := string(out)

	if strings.Count(html, "<svg") != 2 {
		t.Errorf("Expected exactly 2 seal graphics, got %d", strings.Count(html, "<svg"))
	}
	if !strings.Contains(html, "seal-curve-a") || !strings.Contains(html, "seal-curve-b") {
		t.Error("Expected distinct curve ids for the two seals")
	}
}
