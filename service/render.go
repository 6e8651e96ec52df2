package service

import (
	"bytes"
	"fmt"
	"html/template"
	"unicode/utf8"

	"github.com/jilyoungservice-beep/contractgenius/backend/model"
)

// RenderService turns a contract aggregate into a self-contained A4 print
// page. The host browser's print facility does the actual pagination and
// export; this side only guarantees a fixed-size, print-ready layout.
type RenderService struct {
	tmpl *template.Template
}

func NewRenderService() *RenderService {
	funcs := template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"lineAmount": func(item model.ContractItem) float64 {
			return model.LineAmount(item)
		},
		// Long company names get a smaller curved font so they fit the arc.
		"sealFontSize": func(name string) int {
			if utf8.RuneCountInString(name) > 12 {
				return 18
			}
			return 22
		},
	}
	return &RenderService{
		tmpl: template.Must(template.New("print").Funcs(funcs).Parse(printTemplate)),
	}
}

type printView struct {
	Data   model.ContractData
	Labels model.LabelSet
	Total  float64
	SealA  sealView
	SealB  sealView
}

// sealView parameterizes one decorative seal. The curve id must be unique
// per page so each textPath finds its own arc.
type sealView struct {
	CurveID string
	Name    string
}

// RenderHTML renders the print document. Labels come from the same
// projection the form uses, so the two views cannot disagree on wording.
func (s *RenderService) RenderHTML(d model.ContractData) ([]byte, error) {
	view := printView{
		Data:   d,
		Labels: d.Type.Labels(),
		Total:  model.TotalAmount(d),
		SealA:  sealView{CurveID: "seal-curve-a", Name: d.PartyA.Name},
		SealB:  sealView{CurveID: "seal-curve-b", Name: d.PartyB.Name},
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render print document: %w", err)
	}
	return buf.Bytes(), nil
}

const printTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>{{.Labels.Title}} {{.Data.ContractNumber}}</title>
<style>
  @page { size: A4; margin: 0; }
  * { box-sizing: border-box; }
  body { margin: 0; background: #fff; color: #000; font-family: "SimSun", "Songti SC", serif; font-size: 12pt; line-height: 1.7; }
  .page { width: 210mm; min-height: 297mm; margin: 0 auto; padding: 20mm; position: relative; }
  .header { text-align: center; margin-bottom: 36px; }
  .header h1 { display: inline-block; font-size: 24pt; letter-spacing: 8px; border-bottom: 2px solid #000; padding-bottom: 10px; margin: 0 0 16px; }
  .header .meta { display: flex; justify-content: space-between; font-size: 10pt; }
  .parties { margin-bottom: 24px; font-size: 10pt; }
  .party { display: flex; margin-bottom: 14px; }
  .party .role { width: 90px; font-weight: bold; flex-shrink: 0; }
  .party .name { font-weight: bold; font-size: 12pt; margin: 0; }
  .party p { margin: 0; }
  .preamble { text-align: justify; text-indent: 2em; margin-bottom: 24px; }
  h3 { font-size: 10.5pt; margin: 0 0 8px; }
  .items table { width: 100%; border-collapse: collapse; font-size: 10pt; margin-bottom: 24px; }
  .items th, .items td { border: 1px solid #000; padding: 6px 8px; }
  .items th { background: #f5f5f5; text-align: center; }
  .items td.num { text-align: right; }
  .items td.ctr { text-align: center; }
  .items .total td { font-weight: bold; }
  .article { margin-bottom: 16px; }
  .article p { text-align: justify; text-indent: 2em; margin: 0; }
  .signatures { display: flex; gap: 60px; margin-top: 48px; page-break-inside: avoid; }
  .signature { flex: 1; position: relative; }
  .signature .stamp-line { font-weight: bold; font-size: 13pt; margin: 0 0 4px; }
  .signature .company { font-size: 10pt; margin: 0 0 32px; }
  .sign-row { display: flex; align-items: flex-end; margin-bottom: 16px; font-size: 10pt; }
  .sign-row .line { flex: 1; border-bottom: 1px solid #000; height: 22px; margin-left: 8px; }
  .seal { position: absolute; top: -20px; left: 60px; opacity: 0.85; pointer-events: none; }
  .seal-a { transform: rotate(-25deg); }
  .seal-b { transform: rotate(15deg); }
  @media print { body { background: #fff; } .page { box-shadow: none; } }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <h1>{{.Labels.Title}}</h1>
    <div class="meta">
      <span><strong>合同编号：</strong>{{.Data.ContractNumber}}</span>
      <span><strong>签订日期：</strong>{{.Data.Date}}</span>
    </div>
  </div>

  <div class="parties">
    <div class="party">
      <div class="role">甲方：</div>
      <div>
        <p class="name">{{.Data.PartyA.Name}}</p>
        <p>地址：{{.Data.PartyA.Address}}</p>
        <p>授权代表：{{.Data.PartyA.Representative}}</p>
        <p>联系电话：{{.Data.PartyA.Phone}}</p>
      </div>
    </div>
    <div class="party">
      <div class="role">乙方：</div>
      <div>
        <p class="name">{{.Data.PartyB.Name}}</p>
        <p>地址：{{.Data.PartyB.Address}}</p>
        <p>授权代表：{{.Data.PartyB.Representative}}</p>
        <p>联系电话：{{.Data.PartyB.Phone}}</p>
      </div>
    </div>
  </div>

  <div class="preamble">
    <p>甲乙双方本着平等互利、协商一致的原则，根据《中华人民共和国民法典》及相关法律法规，就{{.Labels.PreambleAction}}事宜，经友好协商，达成如下协议，以资共同遵守。</p>
  </div>

  <div class="items">
    <h3>第一条：{{.Labels.ArticleOne}}</h3>
    <table>
      <thead>
        <tr>
          <th style="width:30%">品名/规格</th>
          <th style="width:15%">数量</th>
          <th style="width:15%">单位</th>
          <th style="width:20%">单价 (元)</th>
          <th style="width:20%">金额 (元)</th>
        </tr>
      </thead>
      <tbody>
        {{range .Data.Items}}
        <tr>
          <td class="ctr">{{.Description}}</td>
          <td class="ctr">{{.Quantity}}</td>
          <td class="ctr">{{.Unit}}</td>
          <td class="num">{{money .UnitPrice}}</td>
          <td class="num">{{money (lineAmount .)}}</td>
        </tr>
        {{end}}
      </tbody>
      <tfoot>
        <tr class="total">
          <td colspan="4" class="num">合计金额 (人民币)：</td>
          <td class="num">¥{{money .Total}}</td>
        </tr>
      </tfoot>
    </table>
  </div>

  <div class="article">
    <h3>第二条：付款方式</h3>
    <p>{{.Data.Clauses.Payment}}</p>
  </div>
  <div class="article">
    <h3>第三条：交付与运输</h3>
    <p>{{.Data.Clauses.Delivery}}</p>
  </div>
  <div class="article">
    <h3>第四条：验收标准</h3>
    <p>{{.Data.Clauses.Inspection}}</p>
  </div>
  <div class="article">
    <h3>第五条：争议解决</h3>
    <p>{{.Data.Clauses.Dispute}}</p>
  </div>
  {{if .Data.Clauses.Custom}}
  <div class="article">
    <h3>第六条：补充条款</h3>
    <p>{{.Data.Clauses.Custom}}</p>
  </div>
  {{end}}

  <div class="signatures">
    <div class="signature">
      <p class="stamp-line">甲方（盖章）：</p>
      <p class="company">{{.Data.PartyA.Name}}</p>
      <div class="sign-row"><span>授权代表签字：</span><div class="line"></div></div>
      <div class="sign-row"><span>日期：</span><div class="line"></div></div>
      <div class="seal seal-a">{{template "seal" .SealA}}</div>
    </div>
    <div class="signature">
      <p class="stamp-line">乙方（盖章）：</p>
      <p class="company">{{.Data.PartyB.Name}}</p>
      <div class="sign-row"><span>授权代表签字：</span><div class="line"></div></div>
      <div class="sign-row"><span>日期：</span><div class="line"></div></div>
      <div class="seal seal-b">{{template "seal" .SealB}}</div>
    </div>
  </div>
</div>
</body>
</html>

{{define "seal"}}
<svg viewBox="0 0 200 200" width="160" height="160" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <path id="{{.CurveID}}" d="M 30,100 A 70,70 0 1,1 170,100" fill="none"/>
  </defs>
  <circle cx="100" cy="100" r="95" stroke="#dc2626" stroke-width="4" fill="none"/>
  <circle cx="100" cy="100" r="90" stroke="#dc2626" stroke-width="1" fill="none"/>
  <polygon points="100,60 112,89 143,89 118,109 128,139 100,119 72,139 82,109 57,89 88,89" fill="#dc2626"/>
  <text fill="#dc2626" font-size="{{sealFontSize .Name}}" font-weight="bold" text-anchor="middle" letter-spacing="1" font-family="SimSun, serif">
    <textPath href="#{{.CurveID}}" startOffset="50%">{{.Name}}</textPath>
  </text>
  <text x="100" y="160" fill="#dc2626" font-size="20" font-weight="bold" text-anchor="middle" font-family="SimSun, serif" letter-spacing="2">合同专用章</text>
</svg>
{{end}}
`
