// Package entity 定义领域实体
package entity

// LocalizedName 固定语言集合的名称字段，嵌入到各目录实体。
// 语言集合与查询引擎的回退链保持一致：jp, en, cn, tw, kr。
type LocalizedName struct {
	NameJP string `json:"name_jp" gorm:"column:name_jp;type:varchar(255)"`
	NameEN string `json:"name_en" gorm:"column:name_en;type:varchar(255)"`
	NameCN string `json:"name_cn" gorm:"column:name_cn;type:varchar(255)"`
	NameTW string `json:"name_tw" gorm:"column:name_tw;type:varchar(255)"`
	NameKR string `json:"name_kr" gorm:"column:name_kr;type:varchar(255)"`
}

// NameFields 按语言代码展开名称字段，供记录投影使用
func (n LocalizedName) NameFields() map[string]any {
	return map[string]any{
		"name_jp": n.NameJP,
		"name_en": n.NameEN,
		"name_cn": n.NameCN,
		"name_tw": n.NameTW,
		"name_kr": n.NameKR,
	}
}

// DisplayName 管理界面兜底展示名：优先 en，其次 jp
func (n LocalizedName) DisplayName() string {
	if n.NameEN != "" {
		return n.NameEN
	}
	return n.NameJP
}
