package query

// Input 一次查询的全部输入。每次调用按值传入，引擎不持有状态，
// 并发的重复求值是安全的，调用方采用后写覆盖策略取最新结果。
type Input struct {
	// Search 自由文本查询，经多语言匹配器作用于全部语言视图
	Search string `json:"search"`
	// Filters 各过滤键的当前取值
	Filters FilterState `json:"filters"`
	// Sort 排序配置，Key 为空表示保持输入顺序
	Sort SortSpec `json:"sort"`
	// Page 页码，从 1 开始
	Page int `json:"page"`
	// Limit 每页条数
	Limit int `json:"limit"`
}

// Result 查询结果：一页记录加元数据
type Result struct {
	Items    []Record     `json:"items"`
	Metadata PageMetadata `json:"metadata"`
}

// Engine 把翻译补全、过滤、排序、分页组合成一次查询。
// specs 在构造时校验，接线错误尽早失败。
type Engine struct {
	specs []FilterFieldSpec
}

// NewEngine 创建查询引擎，specs 中出现未知 Kind 时返回 ConfigurationError
func NewEngine(specs []FilterFieldSpec) (*Engine, error) {
	if err := validateSpecs(specs); err != nil {
		return nil, err
	}
	return &Engine{specs: specs}, nil
}

// Specs 返回引擎的过滤器声明
func (e *Engine) Specs() []FilterFieldSpec {
	return e.specs
}

// Query 执行完整管线：补全翻译 -> 过滤（含自由文本搜索）-> 排序 -> 分页。
// 输入集合不被修改。空的 FilterState 与空搜索串返回补全后的原始顺序。
func (e *Engine) Query(records []Record, in Input) (*Result, error) {
	augmented := AugmentAll(records)

	// specs 在 NewEngine 已校验，逐记录求值走免校验路径
	filtered := make([]Record, 0, len(augmented))
	for _, rec := range augmented {
		if !Matches(rec, in.Search) {
			continue
		}
		if evaluate(rec, e.specs, in.Filters) {
			filtered = append(filtered, rec)
		}
	}

	sorted := Sort(filtered, in.Sort)

	page, err := Paginate(sorted, in.Page, in.Limit)
	if err != nil {
		return nil, err
	}

	return &Result{Items: page.Items, Metadata: page.Metadata}, nil
}
