package mobile

// GENERATED; DO NOT EDIT
const help = `<!-- auto-generated from robpike.io/calc package doc -->

<head>
    <style>
        body {
                font-family: Arial, sans-serif;
	        font-size: 10pt;
                line-height: 1.3em;
                max-width: 950px;
                word-break: normal;
                word-wrap: normal;
        }

        pre {
                border-radius: 10px;
                border: 2px solid #8AC007;
		font-family: monospace;
		font-size: 10pt;
                overflow: auto;
                padding: 10px;
                white-space: pre;
        }
    </style>
</head>
<body>
<p>
Calc is a scientific calculator with a single accumulator, the kind that
sits on a desk. There is no expression syntax: input is a sequence of
keypresses, and each one acts on the calculator immediately. Operators
are evaluated strictly left to right as they are entered, so
</p>
<pre>2 + 3 * 4 =
</pre>
<p>
displays 20, not 14.
</p>
<p>
When standard input is a terminal, calc draws a keypad display and reads
keys directly. Otherwise, or with the -e flag, it reads keypresses spelled
as words, one line at a time, and prints the display after each line.
</p>
<p>
Usage:
</p>
<pre>calc [flags] [file ...]
</pre>
<p>
The flags are:
</p>
<pre>-angle unit
	angle unit for trigonometric functions: deg, rad or grad
-config file
	configuration file (default $CALC_CONFIG or the user config directory)
-demo
	run the demonstration script
-e
	execute arguments as input lines and exit
-history file
	file in which to save completed calculations
-log-file file
	write the log to file instead of standard error
-log-level level
	log level: debug, info, warn or error
-precision n
	significant digits shown on the display, 1 to 15
</pre>
<h3 id="hdr-Words">Words</h3>
<p>
A number is entered one digit at a time, as if typed; 12.5 is the five
keys 1, 2, ., 5. The other words are
</p>
<pre>+ - * / ^       add, subtract, multiply, divide, power
× ÷ −           the same, as printed on a keypad
mod             remainder after division
=               complete the pending operation
%               divide the display by 100
c clear ac      clear everything, including memory
ce              clear the display only
bs backspace    delete the last digit
ms mr mc        memory store, recall and clear
m+ m-           add the display to memory, subtract it from memory
pi e phi        enter a constant
deg rad grad    select the angle unit
prec=n          show n significant digits
angle=unit      select the angle unit
</pre>
<p>
and the functions, which replace the display with their result:
</p>
<pre>sin cos tan asin acos atan sinh cosh tanh
log log10 ln log2 exp exp10
sqrt cbrt square sq factorial fact
abs negate neg reciprocal inv percent
ceil floor round
</pre>
<p>
A &#39;#&#39; begins a comment that runs to the end of the line.
</p>
<h3 id="hdr-Errors">Errors</h3>
<p>
A calculation that fails shows Error and reports one of
</p>
<pre>Cannot divide by zero
Input outside function domain
Number too large
Syntax error
Mathematical error
</pre>
<p>
on standard error. After an error, entering a digit, a constant, or a
memory recall starts afresh; operators and functions are ignored until then.
</p>
<h3 id="hdr-Keys">Keys</h3>
<p>
In the terminal display, digits, &#39;.&#39;, the operators and &#39;=&#39; act as on a
keypad. Enter is &#39;=&#39;. Escape clears, Delete clears the entry and
Backspace deletes a digit. The memory keys are
</p>
<pre>ctrl+s  MS
ctrl+r  MR
ctrl+l  MC
ctrl+p  M+
ctrl+n  M−
</pre>
<p>
&#39;a&#39; cycles the angle unit, &#39;[&#39; and &#39;]&#39; change the precision, and &#39;q&#39; or
ctrl+c quits. Letters also enter functions: s sin, c cos, t tan, r sqrt,
l log, n ln, ! factorial, i reciprocal, p π.
</p>
<h3 id="hdr-Configuration">Configuration</h3>
<p>
The configuration file holds one setting per line, a name and a value
separated by spaces. Lines beginning with &#39;#&#39; are comments.
</p>
<pre>angle-unit   rad
precision    12
history.file /home/me/.calc_history.json
history.max  50
log.level    debug
log.file     /tmp/calc.log
prompt       calc&gt;
debug        state intents
</pre>
<p>
Flags override the file.
</p>
</body></html>
`
