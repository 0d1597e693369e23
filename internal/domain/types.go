package domain

type (
	BoardName = string
	ThreadId  = string
	ReplyId   = string
)
