package catalog

func cat(id, name, slug string, children ...*CategoryNode) *CategoryNode {
	return &CategoryNode{ID: id, Name: name, Slug: slug, Children: children}
}

// DefaultCategories returns a fresh copy of the storefront hierarchy.
// Every call allocates new nodes so a Tree never shares state with another.
func DefaultCategories() []*CategoryNode {
	return []*CategoryNode{
		cat("lg", "皮件", "leather-goods",
			cat("lg-bags", "包款", "bags",
				cat("lg-bags-brief", "公事包", "briefcases",
					cat("lg-bags-brief-sart", "Sartorial 系列", "sartorial",
						cat("lg-bags-brief-sart-slim", "薄型", "slim"),
						cat("lg-bags-brief-sart-double", "雙層", "double-gusset"),
					),
					cat("lg-bags-brief-ext", "Extreme 3.0 系列", "extreme-3",
						cat("lg-bags-brief-ext-131", "131 號", "131-compact"),
					),
				),
				cat("lg-bags-back", "後背包", "backpacks",
					cat("lg-bags-back-mst", "Meisterstück 系列", "meisterstuck",
						cat("lg-bags-back-mst-128", "128 號", "128"),
					),
				),
			),
			cat("lg-travel", "旅行", "travel",
				cat("lg-travel-lug", "行李箱", "luggage",
					cat("lg-travel-lug-nf", "Nightflight 系列", "nightflight",
						cat("lg-travel-lug-nf-55", "55 公分登機箱", "cabin-55"),
						cat("lg-travel-lug-nf-69", "69 公分托運箱", "check-in-69"),
					),
				),
			),
			cat("lg-slg", "小皮件", "small-leather-goods",
				cat("lg-slg-wal", "皮夾", "wallets",
					cat("lg-slg-wal-sart", "Sartorial 系列", "sartorial",
						cat("lg-slg-wal-sart-6cc", "6 卡", "6cc"),
						cat("lg-slg-wal-sart-coin", "零錢袋", "coin"),
					),
				),
			),
		),
		cat("wi", "書寫工具", "writing-instruments",
			cat("wi-pens", "筆款", "pens",
				cat("wi-pens-fp", "鋼筆", "fountain-pens",
					cat("wi-pens-fp-mst", "Meisterstück 系列", "meisterstuck",
						cat("wi-pens-fp-mst-146", "146 號", "146"),
						cat("wi-pens-fp-mst-149", "149 號", "149"),
					),
				),
				cat("wi-pens-rb", "鋼珠筆", "rollerballs",
					cat("wi-pens-rb-sw", "StarWalker 系列", "starwalker",
						cat("wi-pens-rb-sw-8486", "8486 型", "8486"),
					),
				),
			),
			cat("wi-ref", "耗材", "refills",
				cat("wi-ref-nb", "筆記本", "notebooks",
					cat("wi-ref-nb-a5", "A5 尺寸", "a5",
						cat("wi-ref-nb-a5-lined", "橫線", "lined"),
						cat("wi-ref-nb-a5-dot", "點格", "dotted"),
					),
				),
				cat("wi-ref-ink", "墨水", "ink",
					cat("wi-ref-ink-btl", "瓶裝墨水", "bottles",
						cat("wi-ref-ink-btl-50", "50ml", "50ml"),
					),
				),
			),
		),
		cat("acc", "配件", "accessories",
			cat("acc-watch", "腕錶", "watches",
				cat("acc-watch-auto", "自動錶", "automatic",
					cat("acc-watch-auto-1858", "1858 系列", "1858",
						cat("acc-watch-auto-1858-0124", "0124 型", "0124"),
					),
				),
			),
			cat("acc-audio", "音響", "audio",
				cat("acc-audio-hp", "耳機", "headphones",
					cat("acc-audio-hp-mb01", "MB 01", "mb-01",
						cat("acc-audio-hp-mb01-blk", "黑色", "black"),
					),
				),
			),
			cat("acc-belt", "皮帶", "belts",
				cat("acc-belt-rev", "雙面皮帶", "reversible",
					cat("acc-belt-rev-35", "35mm", "35mm",
						cat("acc-belt-rev-35-pin", "針扣", "pin-buckle"),
					),
				),
			),
		),
		cat("fr", "香氛", "fragrance",
			cat("fr-men", "男香", "men",
				cat("fr-men-edt", "淡香水", "eau-de-toilette",
					cat("fr-men-edt-leg", "Legend 系列", "legend",
						cat("fr-men-edt-leg-100", "100ml", "100ml"),
					),
				),
			),
			cat("fr-women", "女香", "women",
				cat("fr-women-edp", "淡香精", "eau-de-parfum",
					cat("fr-women-edp-sig", "Signature 系列", "signature",
						cat("fr-women-edp-sig-90", "90ml", "90ml"),
					),
				),
			),
		),
		cat("gift", "禮品", "gifts",
			cat("gift-sets", "禮盒", "sets",
				cat("gift-sets-pen", "筆具禮盒", "pen-sets",
					cat("gift-sets-pen-hol", "節慶限定", "holiday",
						cat("gift-sets-pen-hol-2024", "2024", "2024"),
					),
				),
			),
		),
	}
}
