package catalog

// DefaultTemplates is the storefront's product list. Image tokens inside
// a numbered category must differ in their first dash-delimited token,
// otherwise two products derive the same url key.
func DefaultTemplates() []ProductTemplate {
	return []ProductTemplate{
		{Name: "Sartorial 薄型公事包 黑", Price: 42800, CategoryID: "lg-bags-brief-sart-slim", Image: "sart-slim-brief-black", Description: "義大利小牛皮薄型公事包，可收納 14 吋筆電。"},
		{Name: "Sartorial 薄型公事包 藍", Price: 42800, CategoryID: "lg-bags-brief-sart-slim", Image: "sart-slim-brief-navy", Description: "深藍色薄型公事包，附可拆式肩背帶。"},
		{Name: "Sartorial 雙層公事包", Price: 51500, CategoryID: "lg-bags-brief-sart-double", Image: "sart-double-brief-black", Description: "雙隔層設計，適合長途出差。"},
		{Name: "Extreme 3.0 小型公事包 黑", Price: 38900, CategoryID: "lg-bags-brief-ext-131", Image: "ext3c-compact-black", Description: "壓紋皮革搭配輕量結構。"},
		{Name: "Extreme 3.0 小型公事包 藍", Price: 38900, CategoryID: "lg-bags-brief-ext-131", Image: "ext3n-compact-navy", Description: "壓紋皮革，海軍藍配色。"},
		{Name: "Meisterstück 後背包", Price: 56200, CategoryID: "lg-bags-back-mst-128", Image: "mst128bp-black", Description: "全粒面皮革後背包，內含筆電夾層。"},
		{Name: "Nightflight 登機箱", Price: 36500, CategoryID: "lg-travel-lug-nf-55", Image: "nf55c-black", Description: "符合多數航空公司登機尺寸。"},
		{Name: "Nightflight 托運箱", Price: 44800, CategoryID: "lg-travel-lug-nf-69", Image: "nf69t-black", Description: "大容量四輪托運行李箱。"},
		{Name: "Sartorial 6 卡皮夾 黑", Price: 12900, CategoryID: "lg-slg-wal-sart-6cc", Image: "sw6cc-black", Description: "六卡位對折皮夾。"},
		{Name: "Sartorial 6 卡皮夾 棕", Price: 12900, CategoryID: "lg-slg-wal-sart-6cc", Image: "sw6cb-brown", Description: "六卡位對折皮夾，棕色。"},
		{Name: "Sartorial 零錢袋", Price: 8600, CategoryID: "lg-slg-wal-sart-coin", Image: "sart-coin-pouch-black", Description: "拉鍊式零錢袋。"},
		{Name: "Meisterstück 146 鋼筆 金", Price: 28500, CategoryID: "wi-pens-fp-mst-146", Image: "mb146g-gold", Description: "14K 金筆尖，活塞上墨。"},
		{Name: "Meisterstück 146 鋼筆 鉑金", Price: 30500, CategoryID: "wi-pens-fp-mst-146", Image: "mb146p-platinum", Description: "鍍鉑金飾件版本。"},
		{Name: "Meisterstück 149 鋼筆", Price: 39800, CategoryID: "wi-pens-fp-mst-149", Image: "mb149g-gold", Description: "大尺寸旗艦鋼筆，18K 金筆尖。"},
		{Name: "StarWalker 鋼珠筆 黑", Price: 19800, CategoryID: "wi-pens-rb-sw-8486", Image: "swr8486-black", Description: "浮動星標筆頂設計。"},
		{Name: "StarWalker 鋼珠筆 藍", Price: 19800, CategoryID: "wi-pens-rb-sw-8486", Image: "swb8486-blue", Description: "藍色樹脂筆身。"},
		{Name: "A5 橫線筆記本", Price: 2400, CategoryID: "wi-ref-nb-a5-lined", Image: "nb-a5-lined-black", Description: "皮革封面，146 頁橫線內頁。"},
		{Name: "A5 點格筆記本", Price: 2400, CategoryID: "wi-ref-nb-a5-dot", Image: "nb-a5-dotted-blue", Description: "皮革封面，點格內頁。"},
		{Name: "口袋筆記本三入組", Price: 3200, CategoryID: "wi-ref-nb", Image: "nb-pocket-set", Description: "隨身尺寸，三色一組。"},
		{Name: "瓶裝墨水 皇家藍", Price: 950, CategoryID: "wi-ref-ink-btl-50", Image: "ink50rb-royal-blue", Description: "50ml 鋼筆墨水。"},
		{Name: "瓶裝墨水 神秘黑", Price: 950, CategoryID: "wi-ref-ink-btl-50", Image: "ink50mb-mystery-black", Description: "50ml 鋼筆墨水。"},
		{Name: "1858 自動錶 青銅", Price: 128000, CategoryID: "acc-watch-auto-1858-0124", Image: "w1858a-bronze", Description: "青銅錶殼，機械自動上鍊。"},
		{Name: "1858 自動錶 精鋼", Price: 112000, CategoryID: "acc-watch-auto-1858-0124", Image: "w1858s-steel", Description: "精鋼錶殼，機械自動上鍊。"},
		{Name: "MB 01 耳罩式耳機", Price: 21500, CategoryID: "acc-audio-hp-mb01-blk", Image: "mb01-headphones-black", Description: "主動降噪無線耳機。"},
		{Name: "35mm 雙面針扣皮帶", Price: 11800, CategoryID: "acc-belt-rev-35-pin", Image: "belt35-rev-pin-black", Description: "黑棕雙面可用。"},
		{Name: "Legend 淡香水 100ml", Price: 3650, CategoryID: "fr-men-edt-leg-100", Image: "leg100-edt", Description: "木質馥奇香調。"},
		{Name: "Legend 淡香水禮盒", Price: 4200, CategoryID: "fr-men-edt-leg-100", Image: "leg100s-set", Description: "淡香水搭配沐浴精。"},
		{Name: "Signature 淡香精 90ml", Price: 4100, CategoryID: "fr-women-edp-sig-90", Image: "sig90-edp", Description: "白花麝香調。"},
		{Name: "節慶鋼筆禮盒", Price: 31800, CategoryID: "gift-sets-pen-hol-2024", Image: "gs24fp-holiday", Description: "鋼筆搭配墨水與筆套。"},
		{Name: "節慶原子筆禮盒", Price: 16800, CategoryID: "gift-sets-pen-hol-2024", Image: "gs24bp-holiday", Description: "原子筆搭配名片夾。"},
		{Name: "錶盒上鍊器", Price: 26800, CategoryID: "acc-watch", Image: "watch-winder-box", Description: "雙錶位自動上鍊收納盒。"},
		{Name: "Legend 香氛探索組", Price: 1980, CategoryID: "fr-men", Image: "legend-discovery-kit", Description: "四款小香組合。", Tags: []string{"new-arrival"}},
	}
}
