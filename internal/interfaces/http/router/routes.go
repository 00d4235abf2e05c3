// Package router 提供 HTTP 路由配置
package router

// setupCatalogRoutes 配置目录实体路由
func (r *Router) setupCatalogRoutes() {
	v1 := r.engine.Group("/v1")

	// 角色及其名下的泳装
	characters := v1.Group("/characters")
	{
		characters.GET("", r.handlers.Character.ListCharacters)
		characters.POST("", r.handlers.Character.CreateCharacter)
		characters.GET("/:id", r.handlers.Character.GetCharacter)
		characters.PUT("/:id", r.handlers.Character.UpdateCharacter)
		characters.DELETE("/:id", r.handlers.Character.DeleteCharacter)
	}
	// 嵌套路由与 /:id 冲突，gin 要求参数名一致，单独分组
	characterSwimsuits := v1.Group("/characters/:id/swimsuits")
	{
		characterSwimsuits.GET("", r.handlers.Swimsuit.ListCharacterSwimsuits)
		characterSwimsuits.POST("", r.handlers.Swimsuit.CreateSwimsuit)
	}

	swimsuits := v1.Group("/swimsuits")
	{
		swimsuits.GET("", r.handlers.Swimsuit.ListSwimsuits)
		swimsuits.GET("/:id", r.handlers.Swimsuit.GetSwimsuit)
		swimsuits.PUT("/:id", r.handlers.Swimsuit.UpdateSwimsuit)
		swimsuits.DELETE("/:id", r.handlers.Swimsuit.DeleteSwimsuit)
	}

	skills := v1.Group("/skills")
	{
		skills.GET("", r.handlers.Skill.ListSkills)
		skills.POST("", r.handlers.Skill.CreateSkill)
		skills.GET("/:id", r.handlers.Skill.GetSkill)
		skills.PUT("/:id", r.handlers.Skill.UpdateSkill)
		skills.DELETE("/:id", r.handlers.Skill.DeleteSkill)
	}

	items := v1.Group("/items")
	{
		items.GET("", r.handlers.Item.ListItems)
		items.POST("", r.handlers.Item.CreateItem)
		items.GET("/:id", r.handlers.Item.GetItem)
		items.PUT("/:id", r.handlers.Item.UpdateItem)
		items.DELETE("/:id", r.handlers.Item.DeleteItem)
	}

	events := v1.Group("/events")
	{
		events.GET("", r.handlers.Event.ListEvents)
		events.GET("/active", r.handlers.Event.ListActiveEvents)
		events.POST("", r.handlers.Event.CreateEvent)
		events.GET("/:id", r.handlers.Event.GetEvent)
		events.PUT("/:id", r.handlers.Event.UpdateEvent)
		events.DELETE("/:id", r.handlers.Event.DeleteEvent)
	}

	documents := v1.Group("/documents")
	{
		documents.GET("", r.handlers.Document.ListDocuments)
		documents.POST("", r.handlers.Document.CreateDocument)
		documents.GET("/:id", r.handlers.Document.GetDocument)
		documents.PUT("/:id", r.handlers.Document.UpdateDocument)
		documents.PUT("/:id/published", r.handlers.Document.SetDocumentPublished)
		documents.DELETE("/:id", r.handlers.Document.DeleteDocument)
	}
}
